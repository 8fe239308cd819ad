package common

import "strings"

// WipeByteArray zeroes b in place. Passwords read from the terminal are
// wiped this way once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerValue formats token for AuthorizationHeader.
func BearerValue(token string) string {
	return BearerScheme + " " + token
}

// ParseBearer extracts the token from an AuthorizationHeader value. The
// scheme is matched case-insensitively; ok is false when the value is not a
// bearer credential or the token is empty.
func ParseBearer(value string) (token string, ok bool) {
	scheme, rest, found := strings.Cut(strings.TrimSpace(value), " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(rest)
	return token, token != ""
}
