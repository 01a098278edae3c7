package driver

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"ZombieApocalypse/internal/apocalypse"
	"ZombieApocalypse/internal/grid"
)

// Overlay 选择帧下方附带的距离场。
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayZombie
	OverlayHuman
)

func (o Overlay) String() string {
	switch o {
	case OverlayZombie:
		return "zombie"
	case OverlayHuman:
		return "human"
	default:
		return "none"
	}
}

// ParseOverlay 接受 none 或物种名（单复数均可）。
func ParseOverlay(s string) (Overlay, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "none" {
		return OverlayNone, nil
	}
	species, err := apocalypse.ParseSpecies(name)
	if err != nil {
		return 0, ErrUnknownOverlay.WithData("overlay", s).WithCause(err)
	}
	if species == apocalypse.Zombie {
		return OverlayZombie, nil
	}
	return OverlayHuman, nil
}

func (o Overlay) species() apocalypse.Species {
	if o == OverlayZombie {
		return apocalypse.Zombie
	}
	return apocalypse.Human
}

const (
	glyphObstacle = '#'
	glyphZombie   = 'Z'
	glyphHuman    = 'H'
	glyphBoth     = 'X'
	glyphEmpty    = '.'
	glyphInfinity = "∞"
)

// Board 是渲染需要的只读视图，*apocalypse.Apocalypse 满足它。
type Board interface {
	Height() int
	Width() int
	IsEmpty(row, col int) bool
	NumZombies() int
	NumHumans() int
	Zombies() iter.Seq[grid.Cell]
	Humans() iter.Seq[grid.Cell]
	ComputeDistanceField(species apocalypse.Species) apocalypse.DistanceField
}

// Renderer 把模拟状态画成 ASCII 帧：
//
//	tick 3 zombies=1 humans=2
//	Z#.
//	.XH
type Renderer struct {
	w       io.Writer
	overlay Overlay
}

func NewRenderer(w io.Writer, overlay Overlay) *Renderer {
	return &Renderer{w: w, overlay: overlay}
}

// Render 输出一帧，整帧一次写入。
func (r *Renderer) Render(tick int, b Board) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tick %d zombies=%d humans=%d\n", tick, b.NumZombies(), b.NumHumans())

	zombies := occupied(b.Zombies())
	humans := occupied(b.Humans())
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			c := grid.Cell{Row: row, Col: col}
			switch {
			case !b.IsEmpty(row, col):
				sb.WriteByte(glyphObstacle)
			case zombies[c] && humans[c]:
				sb.WriteByte(glyphBoth)
			case zombies[c]:
				sb.WriteByte(glyphZombie)
			case humans[c]:
				sb.WriteByte(glyphHuman)
			default:
				sb.WriteByte(glyphEmpty)
			}
		}
		sb.WriteByte('\n')
	}

	if r.overlay != OverlayNone {
		writeField(&sb, r.overlay, b)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func writeField(sb *strings.Builder, overlay Overlay, b Board) {
	field := b.ComputeDistanceField(overlay.species())
	cells := make([][]string, field.Height())
	width := 1
	for row := range cells {
		cells[row] = make([]string, field.Width())
		for col := range cells[row] {
			var s string
			switch {
			case !b.IsEmpty(row, col):
				s = string(glyphObstacle)
			case !field.Reachable(row, col):
				s = glyphInfinity
			default:
				s = strconv.Itoa(field.At(row, col))
			}
			cells[row][col] = s
			width = max(width, len([]rune(s)))
		}
	}

	fmt.Fprintf(sb, "%s distance:\n", overlay)
	for _, row := range cells {
		for col, s := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%*s", width, s)
		}
		sb.WriteByte('\n')
	}
}

// occupied 收集实体坐标；越界坐标不会被画出，由 tick 报错。
func occupied(seq iter.Seq[grid.Cell]) map[grid.Cell]bool {
	out := make(map[grid.Cell]bool)
	for c := range seq {
		out[c] = true
	}
	return out
}
