package ytmusic

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// Cookie names carrying the session authentication proof, in preference order.
var sapisidCookies = []string{"__Secure-3PAPISID", "SAPISID"}

// sapisidFromCookie extracts the SAPISID value from raw cookie text.
//
// Returns the empty string when no authentication cookie is present.
func sapisidFromCookie(cookie string) string {
	pairs := strings.Split(cookie, ";")

	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) == 2 {
			values[parts[0]] = parts[1]
		}
	}

	for _, name := range sapisidCookies {
		if v := values[name]; v != "" {
			return v
		}
	}

	return ""
}

// authHash computes the SAPISIDHASH authorization header value for a request.
//
// The upstream service expects sha1("<unix-ts> <sapisid> <origin>") prefixed
// with the timestamp, recomputed per request.
func authHash(sapisid, origin string, now time.Time) string {
	ts := now.Unix()
	sum := sha1.Sum([]byte(fmt.Sprintf("%d %s %s", ts, sapisid, origin)))
	return fmt.Sprintf("SAPISIDHASH %d_%x", ts, sum)
}
