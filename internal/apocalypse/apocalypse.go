package apocalypse

import (
	"iter"
	"math/rand/v2"

	"ZombieApocalypse/internal/grid"
	"ZombieApocalypse/modules/kit/logx"

	"go.uber.org/zap"
)

// Apocalypse 持有障碍网格和两个物种的位置列表。
//
// 约束：
// - 单线程驱动，不加锁
// - 列表保持加入顺序，允许同一格多个实体
type Apocalypse struct {
	grid    *grid.Grid
	zombies []grid.Cell
	humans  []grid.Cell
	rng     *rand.Rand
	log     logx.Logger
}

type options struct {
	obstacles []grid.Cell
	zombies   []grid.Cell
	humans    []grid.Cell
	rng       *rand.Rand
	log       logx.Logger
}

type Option func(*options)

func WithObstacles(cells []grid.Cell) Option {
	return func(o *options) { o.obstacles = cells }
}

func WithZombies(cells []grid.Cell) Option {
	return func(o *options) { o.zombies = cells }
}

func WithHumans(cells []grid.Cell) Option {
	return func(o *options) { o.humans = cells }
}

// WithRand 注入平局随机源，测试时传入固定种子。
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

func WithLogger(l logx.Logger) Option {
	return func(o *options) { o.log = l }
}

func New(height, width int, opts ...Option) (*Apocalypse, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidSize.WithDataMap(map[string]any{"height": height, "width": width})
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.log == nil {
		o.log = logx.Nop()
	}

	g := grid.New(height, width)
	for _, c := range o.obstacles {
		if err := g.Check(c.Row, c.Col); err != nil {
			return nil, err
		}
		g.SetFull(c.Row, c.Col)
	}

	return &Apocalypse{
		grid:    g,
		zombies: append([]grid.Cell(nil), o.zombies...),
		humans:  append([]grid.Cell(nil), o.humans...),
		rng:     o.rng,
		log:     o.log,
	}, nil
}

// Clear 清空障碍和两个列表，尺寸不变。
func (a *Apocalypse) Clear() {
	a.grid.Clear()
	a.zombies = nil
	a.humans = nil
	a.log.Debug("apocalypse cleared",
		zap.Int("height", a.grid.Height()),
		zap.Int("width", a.grid.Width()))
}

// AddZombie 追加一个僵尸，不校验坐标。
func (a *Apocalypse) AddZombie(row, col int) {
	a.zombies = append(a.zombies, grid.Cell{Row: row, Col: col})
}

// AddHuman 追加一个人类，不校验坐标。
func (a *Apocalypse) AddHuman(row, col int) {
	a.humans = append(a.humans, grid.Cell{Row: row, Col: col})
}

func (a *Apocalypse) NumZombies() int { return len(a.zombies) }

func (a *Apocalypse) NumHumans() int { return len(a.humans) }

// Zombies 按加入顺序遍历调用时刻的僵尸列表，可重复 range。
func (a *Apocalypse) Zombies() iter.Seq[grid.Cell] {
	return cells(a.zombies)
}

// Humans 按加入顺序遍历调用时刻的人类列表，可重复 range。
func (a *Apocalypse) Humans() iter.Seq[grid.Cell] {
	return cells(a.humans)
}

func cells(list []grid.Cell) iter.Seq[grid.Cell] {
	return func(yield func(grid.Cell) bool) {
		for _, c := range list {
			if !yield(c) {
				return
			}
		}
	}
}

func (a *Apocalypse) Height() int { return a.grid.Height() }

func (a *Apocalypse) Width() int { return a.grid.Width() }

func (a *Apocalypse) SetFull(row, col int) { a.grid.SetFull(row, col) }

func (a *Apocalypse) SetEmpty(row, col int) { a.grid.SetEmpty(row, col) }

func (a *Apocalypse) IsEmpty(row, col int) bool { return a.grid.IsEmpty(row, col) }

func (a *Apocalypse) FourNeighbors(row, col int) []grid.Cell { return a.grid.FourNeighbors(row, col) }

func (a *Apocalypse) EightNeighbors(row, col int) []grid.Cell {
	return a.grid.EightNeighbors(row, col)
}

func (a *Apocalypse) entities(species Species) []grid.Cell {
	switch species {
	case Human:
		return a.humans
	case Zombie:
		return a.zombies
	default:
		panic(ErrUnknownSpecies.WithData("species", species.String()))
	}
}
