package mid

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"

	// DefaultUser is the only identity the api knows about
	DefaultUser = "default_user"

	userKey = "mid.user"
)

// Cors allows any origin, method and header
func Cors() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	})
}

// RequestID echoes the caller request id, or generates one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// User resolves the identity of the caller. There is no auth, every request belongs to DefaultUser.
func User() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(userKey, DefaultUser)
		ctx.Next()
	}
}

// UserID returns the identity set by User, falling back to DefaultUser
func UserID(ctx *gin.Context) string {
	if v := ctx.GetString(userKey); v != "" {
		return v
	}
	return DefaultUser
}
