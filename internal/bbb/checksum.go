package bbb

import (
	"crypto/sha1" // #nosec G505 -- the BBB API checksum contract mandates SHA-1
	"encoding/hex"
	"fmt"
	"net/url"
)

// Checksum signs an API call the way the BBB wire contract requires:
// SHA-1 over action name + raw query string + shared secret.
func Checksum(action, query, secret string) string {
	sum := sha1.Sum([]byte(action + query + secret)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// buildURL assembles a full signed API URL for the given action.
// The checksum must be computed over the exact query string sent,
// so params are encoded once and reused.
func buildURL(baseURL, secret, action string, params url.Values) string {
	query := params.Encode()
	checksum := Checksum(action, query, secret)
	if query != "" {
		query += "&"
	}
	query += "checksum=" + checksum
	return fmt.Sprintf("%s/api/%s?%s", baseURL, action, query)
}
