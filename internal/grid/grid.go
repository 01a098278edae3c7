package grid

import (
	"fmt"

	"ZombieApocalypse/modules/kit/errx"
)

// State 是单元格的障碍状态。
type State uint8

const (
	Empty State = iota
	Full
)

const CodeOutOfBounds errx.Code = "GRID_OUT_OF_BOUNDS"

// ErrOutOfBounds 在坐标越界时返回（Check）或 panic（其余访问方法）。
var ErrOutOfBounds = errx.NewBiz(CodeOutOfBounds, "坐标越界")

// Cell 是 (row, col) 坐标。
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid 是固定尺寸的障碍网格，按行优先存储。
type Grid struct {
	height int
	width  int
	cells  []State
}

func New(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]State, height*width),
	}
}

func (g *Grid) Height() int { return g.height }

func (g *Grid) Width() int { return g.width }

// Clear 把所有单元格重置为 Empty，尺寸不变。
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Check 校验坐标，越界时返回带坐标信息的 ErrOutOfBounds。
func (g *Grid) Check(row, col int) error {
	if g.InBounds(row, col) {
		return nil
	}
	return ErrOutOfBounds.WithDataMap(map[string]any{
		"row":    row,
		"col":    col,
		"height": g.height,
		"width":  g.width,
	})
}

func (g *Grid) SetFull(row, col int) {
	g.cells[g.mustIndex(row, col)] = Full
}

func (g *Grid) SetEmpty(row, col int) {
	g.cells[g.mustIndex(row, col)] = Empty
}

func (g *Grid) IsEmpty(row, col int) bool {
	return g.cells[g.mustIndex(row, col)] == Empty
}

func (g *Grid) IsFull(row, col int) bool {
	return !g.IsEmpty(row, col)
}

var (
	fourOffsets  = [...]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	eightOffsets = [...]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// FourNeighbors 返回上下左右四个邻居（裁剪到网格内）。
func (g *Grid) FourNeighbors(row, col int) []Cell {
	return g.neighbors(row, col, fourOffsets[:])
}

// EightNeighbors 返回含对角线的八个邻居（裁剪到网格内）。
func (g *Grid) EightNeighbors(row, col int) []Cell {
	return g.neighbors(row, col, eightOffsets[:])
}

func (g *Grid) neighbors(row, col int, offsets []Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d.Row, col+d.Col
		if g.InBounds(r, c) {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

func (g *Grid) mustIndex(row, col int) int {
	if err := g.Check(row, col); err != nil {
		panic(err)
	}
	return row*g.width + col
}
