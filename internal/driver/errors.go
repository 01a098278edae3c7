package driver

import "ZombieApocalypse/modules/kit/errx"

const (
	CodeUnknownOrder   errx.Code = "DRIVER_UNKNOWN_ORDER"
	CodeUnknownOverlay errx.Code = "DRIVER_UNKNOWN_OVERLAY"
)

var (
	ErrUnknownOrder   = errx.NewBiz(CodeUnknownOrder, "未知的移动顺序")
	ErrUnknownOverlay = errx.NewBiz(CodeUnknownOverlay, "未知的距离场叠加层")
	// ErrTickFailed 包装 tick 中恢复的 panic，驱动随后停止。
	ErrTickFailed = errx.ErrTickFailed
)
