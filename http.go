package setcookie

import (
	"net/http"
	"time"
)

// Writer is an interface to emit cookies, typically into an HTTP
// response.
type Writer interface {
	WriteCookie(c *Cookie)
}

// HeaderWriter implements Writer by adding a Set-Cookie header with the
// cookie's serialized form.
type HeaderWriter struct {
	writer http.ResponseWriter
}

// NewHeaderWriter returns a new HeaderWriter.
func NewHeaderWriter(w http.ResponseWriter) *HeaderWriter {
	return &HeaderWriter{writer: w}
}

// WriteCookie adds c as a Set-Cookie header. Cookies without a name
// are skipped.
func (w *HeaderWriter) WriteCookie(c *Cookie) {
	if v := c.String(); v != "" {
		w.writer.Header().Add("Set-Cookie", v)
	}
}

// ReadSetCookies parses every Set-Cookie line in h with the default
// parser. Lines without a name/value pair are skipped.
//
// Parameters:
//   - h: The response header.
//   - domain: The domain applied to each cookie before its own
//     attributes, possibly carrying "#HttpOnly_". Empty means none.
//
// Returns:
//   - []*Cookie: The parsed cookies, in header order.
func ReadSetCookies(h http.Header, domain string) []*Cookie {
	return defaultParser.ReadSetCookies(h, domain)
}

// ReadSetCookies is like the package-level ReadSetCookies but uses p.
func (p *Parser) ReadSetCookies(h http.Header, domain string) []*Cookie {
	var d *string
	if domain != "" {
		d = &domain
	}
	lines := h.Values("Set-Cookie")
	cookies := make([]*Cookie, 0, len(lines))
	for _, line := range lines {
		c := &Cookie{dirty: true}
		if !p.Parse(c, line, d) {
			continue
		}
		cookies = append(cookies, c)
	}
	return cookies
}

// ToHTTP converts c to an *http.Cookie. Expires is parsed when it holds
// an HTTP date and always kept verbatim in RawExpires. Unknown SameSite
// values are dropped.
//
// Returns:
//   - *http.Cookie: The converted cookie.
func (c *Cookie) ToHTTP() *http.Cookie {
	hc := &http.Cookie{
		Name:        c.name,
		Value:       c.value,
		Domain:      c.domain,
		Path:        c.path,
		RawExpires:  c.expires,
		Secure:      c.secure,
		HttpOnly:    c.httpOnly,
		Partitioned: c.partitioned,
	}
	if t, ok := c.ExpiresTime(); ok {
		hc.Expires = t
	}
	if ss, ok := StringToSameSite(c.sameSite); ok {
		hc.SameSite = ss
	}
	return hc
}

// FromHTTP converts an *http.Cookie with the default parser's clock.
func FromHTTP(hc *http.Cookie) *Cookie {
	return defaultParser.FromHTTP(hc)
}

// FromHTTP converts an *http.Cookie to a Cookie. A non-zero MaxAge takes
// precedence over Expires and is resolved against p's clock; a negative
// MaxAge expires the cookie now. RawExpires is used when Expires is
// zero.
//
// Parameters:
//   - hc: The cookie to convert.
//
// Returns:
//   - *Cookie: The converted cookie, or nil if hc is nil.
func (p *Parser) FromHTTP(hc *http.Cookie) *Cookie {
	if hc == nil {
		return nil
	}
	c := &Cookie{dirty: true}
	c.SetName(hc.Name)
	c.SetValue(hc.Value)
	c.SetDomain(hc.Domain)
	c.SetPath(hc.Path)
	switch {
	case hc.MaxAge != 0:
		c.SetExpiresAt(time.Unix(p.now().Unix()+int64(max(hc.MaxAge, 0)), 0))
	case !hc.Expires.IsZero():
		c.SetExpiresAt(hc.Expires)
	case hc.RawExpires != "":
		c.SetExpires(hc.RawExpires)
	}
	c.SetSecure(hc.Secure)
	if hc.HttpOnly {
		c.SetHttpOnly(true)
	}
	c.SetPartitioned(hc.Partitioned)
	if ss, ok := SameSiteToString(hc.SameSite); ok {
		c.SetSameSite(ss)
	}
	return c
}
