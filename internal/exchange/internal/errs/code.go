package errs

var (
	SystemError         = ErrorCode{Code: 503001, Msg: "系统错误"}
	ValidationError     = ErrorCode{Code: 503002, Msg: "交换申请参数非法"}
	InsufficientCredits = ErrorCode{Code: 503003, Msg: "可用积分不足"}
	NotFound            = ErrorCode{Code: 503004, Msg: "交换申请不存在"}
	Forbidden           = ErrorCode{Code: 503005, Msg: "无权操作该交换申请"}
	InvalidState        = ErrorCode{Code: 503006, Msg: "交换申请状态冲突"}
	Expired             = ErrorCode{Code: 503007, Msg: "交换申请已过期"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
