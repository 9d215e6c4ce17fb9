package handler

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Result is what every api handler returns, the wrapper writes it as json
type Result struct {
	Status int
	Body   any
}

// Error is the body of every failed request
type Error struct {
	Message string `json:"detail" example:"something went wrong"`
}

// Handler is the signature of the api handlers
type Handler func(ctx *gin.Context) Result

// Wrapper adapts a Handler to gin, turning panics into internal errors
func Wrapper(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, Error{Message: fmt.Sprint(r)})
			}
		}()

		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// Internal builds the generic failure result out of an error
func Internal(err error) Result {
	return Result{
		Status: http.StatusInternalServerError,
		Body:   Error{Message: err.Error()},
	}
}

// OK builds a 200 result
func OK(body any) Result {
	return Result{
		Status: http.StatusOK,
		Body:   body,
	}
}
