package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionHeader = "X-Cart-Session"
	CartSessionCookie = "cart_session"
	cartSessionKey    = "cart_session"
)

// CartSession resolves the browsing-session key that partitions cart
// storage: header first, then cookie, else a fresh uuid that is set as a
// cookie so the browser keeps the same cart across requests.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.GetHeader(CartSessionHeader)
		if session == "" {
			if cookie, err := c.Cookie(CartSessionCookie); err == nil {
				session = cookie
			}
		}
		if session == "" {
			session = uuid.NewString()
			c.SetCookie(CartSessionCookie, session, 86400*7, "/", "", false, true)
		}

		c.Set(cartSessionKey, session)
		c.Next()
	}
}

// SessionFromContext returns the cart session key set by CartSession.
func SessionFromContext(c *gin.Context) string {
	return c.GetString(cartSessionKey)
}
