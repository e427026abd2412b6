// 共通エラーモデル（全エンティティパッケージで同型のものを使っていたのを一本化）
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func NotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func Internal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Body: レスポンスボディ {"error": message}
func Body(err error) gin.H {
	var api *APIError
	if errors.As(err, &api) {
		return gin.H{"error": api.Message}
	}
	return gin.H{"error": err.Error()}
}
