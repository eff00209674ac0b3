// Package middleware provides HTTP middleware for the API.
//
// Go Pattern: Middleware in Go is a function that wraps an HTTP handler.
// In Gin, middleware is a gin.HandlerFunc that calls c.Next() to continue
// the chain, or c.Abort() to stop processing. This is similar to Express.js
// middleware, but with explicit control flow.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/medsum/internal/session"
)

// SessionCookie is the cookie carrying the session ID.
const SessionCookie = "medsum_session"

// contextKey is a custom type for context keys to avoid collisions.
// Go Pattern: Use unexported types for context keys so other packages
// can't accidentally overwrite your values.
type contextKey string

const sessionContextKey contextKey = "session"

// Session returns middleware that attaches the caller's session to the
// request context. Used on routes that write to the history.
//
// How it works:
// 1. Read the session cookie
// 2. Look the ID up in the manager (this also marks it as seen)
// 3. If missing or expired, start a fresh session and set the cookie
// 4. Store the session in Gin's context for handlers
func Session(sessions *session.Manager, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := lookup(c, sessions)
		if s == nil {
			s = sessions.Start()
			c.SetSameSite(http.SameSiteLaxMode)
			// MaxAge 0 makes it a browser-session cookie
			c.SetCookie(SessionCookie, s.ID, 0, "/", "", secure, true)
		}

		// Go Pattern: Gin uses its own context (different from context.Context).
		// c.Set() stores values that handlers can retrieve with c.Get().
		c.Set(string(sessionContextKey), s)
		c.Next()
	}
}

// ResumeSession returns middleware for read-only routes. It attaches the
// caller's session when the cookie names a live one and otherwise leaves
// the request without a session: no session is started, no cookie is set.
func ResumeSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := lookup(c, sessions); s != nil {
			c.Set(string(sessionContextKey), s)
		}
		c.Next()
	}
}

func lookup(c *gin.Context, sessions *session.Manager) *session.Session {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		return nil
	}
	s, _ := sessions.Get(id)
	return s
}

// GetSession retrieves the session attached by Session or ResumeSession.
// Returns nil when no session was attached.
func GetSession(c *gin.Context) *session.Session {
	val, exists := c.Get(string(sessionContextKey))
	if !exists {
		return nil
	}
	// Go Pattern: Type assertion with the comma-ok idiom won't panic.
	s, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return s
}

// ClearSessionCookie tells the browser to drop the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
