package grid

import (
	"errors"
	"slices"
	"testing"
)

func cellLess(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

func TestGrid_新建全空_SetFull后可查询(t *testing.T) {
	g := New(3, 4)
	if g.Height() != 3 || g.Width() != 4 {
		t.Fatalf("期望尺寸 3x4, got=%dx%d", g.Height(), g.Width())
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if !g.IsEmpty(r, c) {
				t.Fatalf("期望新建网格全空, (%d,%d) 非空", r, c)
			}
		}
	}

	g.SetFull(1, 2)
	if !g.IsFull(1, 2) || g.IsEmpty(1, 2) {
		t.Fatalf("期望 (1,2) 为 Full")
	}
	g.SetEmpty(1, 2)
	if !g.IsEmpty(1, 2) {
		t.Fatalf("期望 SetEmpty 后 (1,2) 为空")
	}
}

func TestGrid_Clear_保留尺寸(t *testing.T) {
	g := New(2, 2)
	g.SetFull(0, 0)
	g.SetFull(1, 1)
	g.Clear()
	if g.Height() != 2 || g.Width() != 2 {
		t.Fatalf("期望 Clear 不改变尺寸")
	}
	if g.IsFull(0, 0) || g.IsFull(1, 1) {
		t.Fatalf("期望 Clear 后全空")
	}
}

func TestGrid_邻居裁剪到边界(t *testing.T) {
	g := New(3, 3)

	corner := g.FourNeighbors(0, 0)
	slices.SortFunc(corner, cellLess)
	if want := []Cell{{0, 1}, {1, 0}}; !slices.Equal(corner, want) {
		t.Fatalf("角落四邻居 got=%v want=%v", corner, want)
	}

	if got := len(g.FourNeighbors(1, 1)); got != 4 {
		t.Fatalf("中心四邻居应为 4 个, got=%d", got)
	}
	if got := len(g.EightNeighbors(1, 1)); got != 8 {
		t.Fatalf("中心八邻居应为 8 个, got=%d", got)
	}

	edge := g.EightNeighbors(2, 1)
	slices.SortFunc(edge, cellLess)
	want := []Cell{{1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 2}}
	if !slices.Equal(edge, want) {
		t.Fatalf("底边八邻居 got=%v want=%v", edge, want)
	}
}

func TestGrid_越界访问panic(t *testing.T) {
	g := New(2, 2)
	if err := g.Check(2, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("期望 Check 返回 ErrOutOfBounds, got=%v", err)
	}
	if err := g.Check(1, 1); err != nil {
		t.Fatalf("期望界内坐标无错误, got=%v", err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("期望 panic(ErrOutOfBounds), got=%v", r)
		}
	}()
	g.SetFull(-1, 0)
}

