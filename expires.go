package setcookie

import (
	"net/http"
	"time"
)

// expiresLen is the width of a formatted Expires date,
// "Www, dd Mon yyyy hh:mm:ss GMT".
const expiresLen = len(http.TimeFormat)

// FormatExpires renders t as an RFC1123 GMT date suitable for the
// Expires attribute. Day and month names are fixed English
// abbreviations regardless of locale.
//
// It returns false when t is the session sentinel (the zero time or the
// Unix epoch) or when its UTC year cannot be written with four digits.
//
// Parameters:
//   - t: The absolute expiry time.
//
// Returns:
//   - string: The formatted date.
//   - bool: Whether t could be formatted.
func FormatExpires(t time.Time) (string, bool) {
	if isSessionTime(t) {
		return "", false
	}
	u := t.UTC()
	if y := u.Year(); y < 0 || y > 9999 {
		return "", false
	}
	s := u.Format(http.TimeFormat)
	if len(s) != expiresLen {
		return "", false
	}
	return s, true
}

func isSessionTime(t time.Time) bool {
	return t.IsZero() || t.Unix() == 0
}

// SetExpires stores a literal Expires date without validation. An empty
// string makes the cookie a session cookie.
func (c *Cookie) SetExpires(expires string) {
	c.expires = expires
	c.invalidate()
}

// SetExpiresAt sets Expires from an absolute time. The session sentinel
// and unformattable times leave Expires untouched.
func (c *Cookie) SetExpiresAt(t time.Time) {
	s, ok := FormatExpires(t)
	if !ok {
		return
	}
	c.SetExpires(s)
}

// SetExpiresUnix sets Expires from Unix seconds. 0 leaves Expires
// untouched.
func (c *Cookie) SetExpiresUnix(sec int64) {
	if sec == 0 {
		return
	}
	c.SetExpiresAt(time.Unix(sec, 0))
}

// ExpiresTime parses the stored Expires date. It returns false for a
// session cookie or a date in none of the HTTP date formats.
func (c *Cookie) ExpiresTime() (time.Time, bool) {
	if c.expires == "" {
		return time.Time{}, false
	}
	t, err := http.ParseTime(c.expires)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
