package errx

// 这里定义跨包统一的系统类错误码。
//
// 约束：
// - 只放“技术类/运行时”错误码，便于驱动层统一上报
// - 领域错误码（例如 SIM_OUT_OF_BOUNDS）由各包自行定义

const (
	// CodeInternal 表示不可预期的内部错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeConfig 表示配置读取/解析失败。
	CodeConfig Code = "CONFIG_ERROR"
	// CodeTickFailed 表示一次模拟 tick 异常中断。
	CodeTickFailed Code = "TICK_FAILED"
	// 请求参数错误
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
)

// 统一系统类哨兵错误（允许 WithData/WithCause 派生新对象）。
var (
	ErrInternal    = NewSys(CodeInternal, "内部错误")
	ErrConfig      = NewSys(CodeConfig, "配置错误")
	ErrTickFailed  = NewSys(CodeTickFailed, "模拟 tick 失败")
	ErrReqParamERR = NewBiz(CodeReqParamError, "请求参数错误")
)
