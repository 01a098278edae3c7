package driver

import "strings"

// Order 决定一个 tick 内两个物种的移动先后。
type Order uint8

const (
	// HumansFirst: 僵尸场 -> 人类移动 -> 人类场 -> 僵尸移动
	HumansFirst Order = iota
	ZombiesFirst
)

func (o Order) String() string {
	switch o {
	case HumansFirst:
		return "humans_first"
	case ZombiesFirst:
		return "zombies_first"
	default:
		return "unknown"
	}
}

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "humans_first":
		return HumansFirst, nil
	case "zombies_first":
		return ZombiesFirst, nil
	default:
		return 0, ErrUnknownOrder.WithData("order", s)
	}
}
