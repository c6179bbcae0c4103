package response

// 业务错误码直接沿用 HTTP 语义，前端按 code 分支即可
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
	CodeUnavailable  = 503 // 暂不可服务（如会话还在恢复），可重试
)

// CodeMsgMap 缺省文案，Error 里可被自定义 msg 覆盖
var CodeMsgMap = map[int]string{
	CodeOK:           "OK",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeForbidden:    "Forbidden",
	CodeNotFound:     "Not Found",
	CodeServerError:  "Internal Server Error",
	CodeUnavailable:  "Service Unavailable",
}
