package apocalypse

import (
	"ZombieApocalypse/internal/grid"

	"go.uber.org/zap"
)

// MoveHumans 让每个人类逃离最近的僵尸：候选为八邻居加原地，取 zombieField 最大值，
// 平局均匀随机。所有移动都基于同一份距离场计算，列表长度与顺序不变。
func (a *Apocalypse) MoveHumans(zombieField DistanceField) error {
	if err := a.checkField(zombieField, Human); err != nil {
		return err
	}
	a.humans = a.moveAll(a.humans, zombieField, a.grid.EightNeighbors, func(d, best int) bool {
		return d > best
	})
	return nil
}

// MoveZombies 让每个僵尸追向最近的人类：候选为四邻居加原地，取 humanField 最小值，
// 平局均匀随机。
func (a *Apocalypse) MoveZombies(humanField DistanceField) error {
	if err := a.checkField(humanField, Zombie); err != nil {
		return err
	}
	a.zombies = a.moveAll(a.zombies, humanField, a.grid.FourNeighbors, func(d, best int) bool {
		return d < best
	})
	return nil
}

func (a *Apocalypse) moveAll(
	list []grid.Cell,
	field DistanceField,
	neighbors func(row, col int) []grid.Cell,
	better func(d, best int) bool,
) []grid.Cell {
	next := make([]grid.Cell, 0, len(list))
	var ties []grid.Cell
	for _, from := range list {
		ties = ties[:0]
		best := 0
		candidates := append(neighbors(from.Row, from.Col), from)
		for _, c := range candidates {
			if !a.grid.IsEmpty(c.Row, c.Col) {
				continue
			}
			d := field.At(c.Row, c.Col)
			switch {
			case len(ties) == 0 || better(d, best):
				best = d
				ties = append(ties[:0], c)
			case d == best:
				ties = append(ties, c)
			}
		}
		// 原地被后放的障碍占据且四周全堵时留在原地
		if len(ties) == 0 {
			next = append(next, from)
			continue
		}
		next = append(next, ties[a.rng.IntN(len(ties))])
	}
	return next
}

func (a *Apocalypse) checkField(field DistanceField, mover Species) error {
	if field.height == a.grid.Height() && field.width == a.grid.Width() && len(field.values) == field.height*field.width {
		return nil
	}
	err := ErrFieldMismatch.WithDataMap(map[string]any{
		"mover":        mover.String(),
		"field_height": field.height,
		"field_width":  field.width,
		"grid_height":  a.grid.Height(),
		"grid_width":   a.grid.Width(),
	})
	a.log.Warn("move rejected", zap.String("mover", mover.String()), zap.Error(err))
	return err
}
