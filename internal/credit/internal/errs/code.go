package errs

var (
	SystemError        = ErrorCode{Code: 502001, Msg: "系统错误"}
	InsufficientCredit = ErrorCode{Code: 502002, Msg: "积分不足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
