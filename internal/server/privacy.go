package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "folio_visitor"
	themeCookie   = "theme"
	visitorKey    = "visitor_id"
	cookieMaxAge  = 3600 * 24 * 365
)

// clientHasher hashes client IPs with a per-process salt so request logs
// never carry raw addresses.
type clientHasher struct {
	salt string
}

func newClientHasher() clientHasher {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generate hashing salt: " + err.Error())
	}
	return clientHasher{salt: hex.EncodeToString(b)}
}

func (h clientHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// skipVisitor lists paths that never need a visitor id.
func skipVisitor(path string) bool {
	for _, prefix := range []string{"/static/", "/data/", "/metrics", "/healthz", "/favicon"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// visitorMiddleware assigns the random visitor id the theme preference is
// stored under. Visitors sending DNT get no id; their theme lives only in
// the theme cookie.
func (s *Server) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipVisitor(c.Request.URL.Path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, cookieMaxAge, "/", "", s.opts.SecureCookies, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}
