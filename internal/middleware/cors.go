// cors.go configures Cross-Origin Resource Sharing (CORS).
//
// CORS is needed when a separate frontend (e.g. a Vite dev server on
// localhost:5173) calls the JSON API on localhost:8080. The built-in page is
// served from the same origin and does not need it.
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns configured CORS middleware.
// Credentials are allowed so the session cookie travels with API calls.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, // Cache preflight responses
	})
}
