package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error half of the response envelope. StatusCode travels out of
// band; the body only ever carries {"success":false,"error":"..."}.
type Err struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Msg        string `json:"error"`

	cause error
}

func (e *Err) Error() string {
	return e.Msg
}

func (e *Err) Unwrap() error {
	return e.cause
}

// RenderErr writes the error envelope and aborts the handler chain. Server
// faults are logged with the request id; client faults are not.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status_code", err.StatusCode),
			zap.String("request_id", requestid.Get(ctx)),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
		cause:      err,
	}
}

func ErrAuthenticationRequired() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "로그인이 필요합니다.",
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "이메일 또는 비밀번호가 올바르지 않습니다.",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
		cause:      err,
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        err.Error(),
		cause:      err,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        err.Error(),
		cause:      err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "서버 오류가 발생했습니다.",
		cause:      err,
	}
}
