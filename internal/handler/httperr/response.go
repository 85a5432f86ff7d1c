package httperr

import (
	"github.com/gin-gonic/gin"
)

// FieldError describes one offending request field.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// Response is the error envelope every endpoint returns: a human-readable
// message, optional per-field details, and for seat conflicts the specific
// seats that were lost to another session.
type Response struct {
	Status  int                   `json:"-"`
	Message string                `json:"message"`
	Errors  map[string]FieldError `json:"errors,omitempty"`
	SeatIDs []int64               `json:"seatIds,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, fields map[string]FieldError) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Errors: fields}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithConflict reports a lost seat race, naming the contested seats.
func AbortWithConflict(c *gin.Context, status int, err error, msg string, seatIDs []int64) {
	if err == nil {
		panic("AbortWithConflict: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, SeatIDs: seatIDs}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Field builds a single-field error map.
func Field(path, msg string) map[string]FieldError {
	return map[string]FieldError{path: {Msg: msg, Path: path}}
}
