package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"fitformal.com/app/internal/upstream"
)

const (
	SessionName = "ff_session"

	keySID        = "sid"
	keyToken      = "token"
	keyBusinessID = "business_id"

	ctxKeyIdentity = "identity"
	ctxKeySession  = "session"
)

// Identity is the per-request caller: the shell's bearer token if one was
// sent, plus whatever the session has persisted as a fallback.
type Identity struct {
	SessionID     string
	BearerToken   string
	FallbackToken string
	BusinessID    string
}

// Credentials is the token source screens fetch with: header first,
// session fallback second.
func (id Identity) Credentials() upstream.TokenSource {
	return upstream.Chain{
		upstream.StaticToken(id.BearerToken),
		upstream.StaticToken(id.FallbackToken),
	}
}

// Session loads (or starts) the cookie session and resolves the request's
// identity. A session always ends up with a stable sid; screen instances
// are keyed by it.
func Session(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := store.Get(c.Request, SessionName) // decode errors start a fresh session

		sid, _ := sess.Values[keySID].(string)
		if sid == "" {
			sid = uuid.NewString()
			sess.Values[keySID] = sid
			_ = sess.Save(c.Request, c.Writer)
		}

		ident := Identity{SessionID: sid}
		ident.FallbackToken, _ = sess.Values[keyToken].(string)
		ident.BusinessID, _ = sess.Values[keyBusinessID].(string)

		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			ident.BearerToken = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}

		c.Set(ctxKeyIdentity, ident)
		c.Set(ctxKeySession, sess)

		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ctxKeyIdentity)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}

// SaveCredentials persists the fallback token and business id into the
// session cookie.
func SaveCredentials(c *gin.Context, token, businessID string) error {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return nil
	}
	sess, ok := v.(*sessions.Session)
	if !ok {
		return nil
	}
	sess.Values[keyToken] = token
	if businessID != "" {
		sess.Values[keyBusinessID] = businessID
	}
	return sess.Save(c.Request, c.Writer)
}
