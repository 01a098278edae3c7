package simconfig

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{Code: c, Message: m}
}

// 配置校验拒绝 reason，由驱动层以 biz 日志输出。
var (
	ReasonGridTooSmall     = NewReason("GRID_TOO_SMALL", "网格高宽必须大于 0")
	ReasonNegativeTicks    = NewReason("NEGATIVE_TICKS", "ticks 不能为负数")
	ReasonNegativeInterval = NewReason("NEGATIVE_INTERVAL", "tick_interval 不能为负数")
	ReasonUnknownOrder     = NewReason("UNKNOWN_ORDER", "order 只能是 humans_first 或 zombies_first")
	ReasonUnknownOverlay   = NewReason("UNKNOWN_OVERLAY", "overlay 只能是 none、zombie 或 human")
	ReasonBadCell          = NewReason("BAD_CELL", "坐标格式应为 \"row,col\" 或 [row, col]")
)
