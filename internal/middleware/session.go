package middleware

import (
	"net/http"
	"time"

	"github.com/dafibh/finai/finai-web/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie carrying the browser's session id
	SessionCookieName = "finai_session"

	sessionKey = "session"
)

// SessionMiddleware attaches the browser's render state to the request,
// starting a new session when the cookie is missing, malformed or expired
func SessionMiddleware(store *session.Store, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := lookupSession(c, store)
			if sess == nil {
				sess = store.Create()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID.String(),
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

func lookupSession(c echo.Context, store *session.Store) *session.Session {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	sess, ok := store.Get(id)
	if !ok {
		return nil
	}
	return sess
}

// GetSession retrieves the session from the Echo context
func GetSession(c echo.Context) *session.Session {
	if sess, ok := c.Get(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// SetSession stores sess in the Echo context
func SetSession(c echo.Context, sess *session.Session) {
	c.Set(sessionKey, sess)
}
