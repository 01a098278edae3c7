package apocalypse

import (
	"ZombieApocalypse/internal/grid"
	"ZombieApocalypse/internal/queue"
)

// DistanceField 是每个单元格到最近源实体的四向最短步数。
// 源实体所在格为 0，不可达为 Sentinel()（height*width）。
type DistanceField struct {
	height int
	width  int
	values []int
}

func newDistanceField(height, width int) DistanceField {
	f := DistanceField{
		height: height,
		width:  width,
		values: make([]int, height*width),
	}
	sentinel := f.Sentinel()
	for i := range f.values {
		f.values[i] = sentinel
	}
	return f
}

func (f DistanceField) Height() int { return f.height }

func (f DistanceField) Width() int { return f.width }

// Sentinel 是不可达标记，严格大于任何真实路径长度。
func (f DistanceField) Sentinel() int { return f.height * f.width }

func (f DistanceField) At(row, col int) int {
	return f.values[row*f.width+col]
}

// Reachable 报告 (row, col) 是否能到达某个源实体。
func (f DistanceField) Reachable(row, col int) bool {
	return f.At(row, col) != f.Sentinel()
}

// Rows 返回二维拷贝。
func (f DistanceField) Rows() [][]int {
	out := make([][]int, f.height)
	for r := range out {
		out[r] = append([]int(nil), f.values[r*f.width:(r+1)*f.width]...)
	}
	return out
}

func (f DistanceField) set(c grid.Cell, d int) {
	f.values[c.Row*f.width+c.Col] = d
}

func (f DistanceField) get(c grid.Cell) int {
	return f.values[c.Row*f.width+c.Col]
}

// ComputeDistanceField 以 species 的所有实体为源做多源 BFS。
// 路径只走四向、避开障碍；没有该物种实体时整张场都是 Sentinel。
func (a *Apocalypse) ComputeDistanceField(species Species) DistanceField {
	height, width := a.grid.Height(), a.grid.Width()
	field := newDistanceField(height, width)
	visited := grid.New(height, width)

	boundary := queue.New[grid.Cell](height * width)
	defer boundary.Dispose()

	for _, c := range a.entities(species) {
		// 同格多个实体只入队一次
		if visited.IsFull(c.Row, c.Col) {
			continue
		}
		visited.SetFull(c.Row, c.Col)
		field.set(c, 0)
		boundary.Enqueue(c)
	}

	for {
		cur, ok := boundary.Dequeue()
		if !ok {
			break
		}
		next := field.get(cur) + 1
		for _, n := range a.grid.FourNeighbors(cur.Row, cur.Col) {
			if visited.IsEmpty(n.Row, n.Col) && a.grid.IsEmpty(n.Row, n.Col) {
				visited.SetFull(n.Row, n.Col)
				field.set(n, next)
				boundary.Enqueue(n)
			}
		}
	}
	return field
}
