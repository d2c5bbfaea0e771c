package middleware

import (
	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/http/sessioncookie"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/shared/apperr"
)

const ctxKeySession = "shopper_session"

// ResolveSession loads the shopper session named by the signed cookie, creating
// a fresh one (and setting the cookie) on first visit.
func ResolveSession(codec *sessioncookie.Codec, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := codec.GetSessionID(c)

		sess, err := store.GetOrCreate(c.Request.Context(), id)
		if err != nil {
			Fail(c, apperr.Wrap(err))
			return
		}
		if sess.ID != id {
			codec.Set(c, sess.ID)
		}

		c.Set(ctxKeySession, sess)
		c.Next()
	}
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
