package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/config"
)

// SetupMiddleware installs the cross-cutting middleware stack: CORS for the
// configured browser origin, the inbound body cap, request logging and panic
// recovery.
func SetupMiddleware(r *gin.Engine, conf config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{conf.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(BodyLimit(conf.MaxBodyBytes))
	r.Use(RequestLogger())
	r.Use(gin.Recovery())
}

// BodyLimit caps inbound payloads; oversized bodies fail the JSON read
// inside the handler rather than buffering unbounded input.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
