package apocalypse

import (
	"errors"
	"slices"
	"testing"

	"ZombieApocalypse/internal/grid"
	"ZombieApocalypse/modules/kit/logx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_尺寸非法(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		_, err := New(size[0], size[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size=%v 期望 ErrInvalidSize, got=%v", size, err)
		}
	}
}

func TestNew_障碍越界返回错误(t *testing.T) {
	_, err := New(2, 2, WithObstacles([]grid.Cell{{0, 0}, {2, 1}}))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("期望 ErrOutOfBounds, got=%v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Data()["row"] != 2 {
		t.Fatalf("期望错误 data 带越界坐标, got=%v", err)
	}
}

func TestNew_复制调用方列表(t *testing.T) {
	zombies := []grid.Cell{{0, 0}}
	a := mustNew(t, 3, 3, WithZombies(zombies), WithObstacles([]grid.Cell{{1, 1}}))
	zombies[0] = grid.Cell{Row: 2, Col: 2}

	if got := slices.Collect(a.Zombies()); !slices.Equal(got, []grid.Cell{{0, 0}}) {
		t.Fatalf("期望内部列表不受外部修改影响, got=%v", got)
	}
	if a.IsEmpty(1, 1) {
		t.Fatalf("期望 (1,1) 为障碍")
	}
}

func TestAdd_保持加入顺序且允许重复(t *testing.T) {
	a := mustNew(t, 4, 4)
	a.AddHuman(3, 3)
	a.AddHuman(0, 1)
	a.AddHuman(3, 3)
	a.AddZombie(2, 2)

	if a.NumHumans() != 3 || a.NumZombies() != 1 {
		t.Fatalf("humans=%d zombies=%d", a.NumHumans(), a.NumZombies())
	}
	want := []grid.Cell{{3, 3}, {0, 1}, {3, 3}}
	if got := slices.Collect(a.Humans()); !slices.Equal(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestAdd_不校验坐标(t *testing.T) {
	a := mustNew(t, 2, 2)
	a.AddZombie(10, 10)
	if a.NumZombies() != 1 {
		t.Fatalf("期望越界坐标也能加入列表")
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("期望计算距离场时越界 panic(ErrOutOfBounds), got=%v", r)
		}
	}()
	a.ComputeDistanceField(Zombie)
}

func TestEntities_迭代器可重复且反映最新列表(t *testing.T) {
	a := mustNew(t, 5, 5,
		WithZombies([]grid.Cell{{0, 0}}),
		WithHumans([]grid.Cell{{0, 3}, {4, 4}}))

	seq := a.Humans()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("期望同一序列可重复遍历 first=%v second=%v", first, second)
	}

	if err := a.MoveZombies(a.ComputeDistanceField(Human)); err != nil {
		t.Fatalf("err=%v", err)
	}
	if got := slices.Collect(a.Zombies()); !slices.Equal(got, []grid.Cell{{0, 1}}) {
		t.Fatalf("期望新的 Zombies() 反映移动后的列表, got=%v", got)
	}

	n := 0
	for range a.Humans() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("期望 break 后停止遍历")
	}
}

func TestClear_清空障碍与实体(t *testing.T) {
	a := mustNew(t, 3, 4,
		WithObstacles([]grid.Cell{{1, 1}, {2, 3}}),
		WithZombies([]grid.Cell{{0, 0}}),
		WithHumans([]grid.Cell{{2, 2}}))

	a.Clear()
	if a.NumZombies() != 0 || a.NumHumans() != 0 {
		t.Fatalf("期望实体清空, zombies=%d humans=%d", a.NumZombies(), a.NumHumans())
	}
	if a.Height() != 3 || a.Width() != 4 {
		t.Fatalf("期望尺寸不变, got=%dx%d", a.Height(), a.Width())
	}
	if !a.IsEmpty(1, 1) || !a.IsEmpty(2, 3) {
		t.Fatalf("期望障碍清空")
	}
	a.AddHuman(1, 1)
	if a.NumHumans() != 1 {
		t.Fatalf("期望 Clear 后仍可添加")
	}
}

func TestMove_距离场不一致时记录WARN日志(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := mustNew(t, 2, 2, WithLogger(logx.NewZapLogger(zap.New(core))))

	_ = a.MoveHumans(DistanceField{})
	if n := logs.FilterMessage("move rejected").FilterLevelExact(zapcore.WarnLevel).Len(); n != 1 {
		t.Fatalf("期望 1 条 WARN 日志, got=%d all=%v", n, logs.All())
	}
}

func TestSpecies_解析与名称(t *testing.T) {
	s, err := ParseSpecies("zombies")
	if err != nil || s != Zombie || s.String() != "zombie" {
		t.Fatalf("got=%v err=%v", s, err)
	}
	if _, err := ParseSpecies("vampire"); !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("期望 ErrUnknownSpecies, got=%v", err)
	}
}
