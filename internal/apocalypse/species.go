package apocalypse

import "fmt"

// Species 是实体种类。
type Species uint8

const (
	Human Species = iota + 1
	Zombie
)

func (s Species) String() string {
	switch s {
	case Human:
		return "human"
	case Zombie:
		return "zombie"
	default:
		return fmt.Sprintf("species(%d)", s)
	}
}

// ParseSpecies 解析配置里的物种名，未知名称返回 ErrUnknownSpecies。
func ParseSpecies(name string) (Species, error) {
	switch name {
	case "human", "humans":
		return Human, nil
	case "zombie", "zombies":
		return Zombie, nil
	default:
		return 0, ErrUnknownSpecies.WithData("species", name)
	}
}
