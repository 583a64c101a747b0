package setcookie

import (
	"strings"
	"sync"
	"time"
)

// Legacy sentinels of the Netscape/curl cookie-jar text format.
const (
	// httpOnlyPrefix marks an HttpOnly cookie in a jar's domain column.
	httpOnlyPrefix = "#HttpOnly_"
	// unknownPath is written by curl when no path was recorded.
	unknownPath = "unknown"
	// jarTrue is the jar's textual true for the secure column.
	jarTrue = "TRUE"
)

// Cookie is a single HTTP cookie as held by a client cookie jar.
//
// A Cookie is populated either through New/NewFromJar or by parsing an
// attribute-list string (see Parser). Setters keep two implications in
// force on every path:
//   - Partitioned implies Secure.
//   - SameSite=None implies Secure.
//
// String is safe to call concurrently. Setters are not; callers sharing
// a Cookie across goroutines must serialize mutations themselves.
type Cookie struct {
	name        string
	value       string
	domain      string
	path        string
	expires     string
	sameSite    string
	secure      bool
	httpOnly    bool
	partitioned bool

	mu         sync.Mutex
	serialized string
	dirty      bool
}

// New creates a cookie field by field. A zero expires (or the Unix
// epoch) yields a session cookie.
//
// Parameters:
//   - name: The name of the cookie.
//   - value: The value of the cookie.
//   - domain: The domain, optionally carrying the "#HttpOnly_" marker.
//   - path: The path; "unknown" leaves it empty.
//   - secure: The Secure flag.
//   - expires: The absolute expiry time.
//   - sameSite: One of "Strict", "Lax", "None", or empty.
//
// Returns:
//   - *Cookie: The new cookie.
func New(
	name, value, domain, path string,
	secure bool,
	expires time.Time,
	sameSite string,
) *Cookie {
	c := &Cookie{dirty: true}
	c.SetName(name)
	c.SetValue(value)
	c.SetDomain(domain)
	c.SetPath(path)
	c.SetExpiresAt(expires)
	c.SetSecure(secure)
	c.SetSameSite(sameSite)
	return c
}

// NewFromJar creates a cookie from the columns of a Netscape/curl jar
// line. The secure column is true only when it reads "TRUE" (any case)
// and expires is in Unix seconds, 0 meaning a session cookie.
//
// Parameters:
//   - name: The name column.
//   - value: The value column.
//   - domain: The domain column, possibly prefixed with "#HttpOnly_".
//   - path: The path column, possibly "unknown".
//   - secure: The secure column text.
//   - expires: The expiry column in Unix seconds.
//   - sameSite: The SameSite value, or empty.
//
// Returns:
//   - *Cookie: The new cookie.
func NewFromJar(
	name, value, domain, path, secure string,
	expires int64,
	sameSite string,
) *Cookie {
	c := &Cookie{dirty: true}
	c.SetName(name)
	c.SetValue(value)
	c.SetDomain(domain)
	c.SetPath(path)
	c.SetExpiresUnix(expires)
	c.SetSecure(asciiEqualFold(secure, jarTrue))
	c.SetSameSite(sameSite)
	return c
}

// Name returns the cookie name.
func (c *Cookie) Name() string { return c.name }

// Value returns the cookie value without surrounding quotes.
func (c *Cookie) Value() string { return c.value }

// Domain returns the domain without the "#HttpOnly_" marker.
func (c *Cookie) Domain() string { return c.domain }

// Path returns the path, or "" when none is known.
func (c *Cookie) Path() string { return c.path }

// Expires returns the Expires date text, or "" for a session cookie.
func (c *Cookie) Expires() string { return c.expires }

// SameSite returns the SameSite value as stored.
func (c *Cookie) SameSite() string { return c.sameSite }

// Secure reports whether the Secure flag is set.
func (c *Cookie) Secure() bool { return c.secure }

// HttpOnly reports whether the HttpOnly flag is set.
func (c *Cookie) HttpOnly() bool { return c.httpOnly }

// Partitioned reports whether the Partitioned flag is set.
func (c *Cookie) Partitioned() bool { return c.partitioned }

// IsSessionCookie reports whether the cookie has no expiry.
func (c *Cookie) IsSessionCookie() bool { return c.expires == "" }

// SetName sets the cookie name.
func (c *Cookie) SetName(name string) {
	c.name = name
	c.invalidate()
}

// SetValue sets the cookie value.
func (c *Cookie) SetValue(value string) {
	c.value = value
	c.invalidate()
}

// SetDomain sets the domain. A leading "#HttpOnly_" marker is stripped
// and sets HttpOnly.
func (c *Cookie) SetDomain(domain string) {
	d, httpOnly := normalizeDomain(domain)
	c.domain = d
	if httpOnly {
		c.httpOnly = true
	}
	c.invalidate()
}

// SetPath sets the path. The jar sentinel "unknown" clears it.
func (c *Cookie) SetPath(path string) {
	if path == unknownPath {
		path = ""
	}
	c.path = path
	c.invalidate()
}

// SetSecure sets the Secure flag. Clearing it has no effect while the
// cookie is Partitioned or SameSite=None.
func (c *Cookie) SetSecure(secure bool) {
	if !secure && c.requiresSecure() {
		return
	}
	c.secure = secure
	c.invalidate()
}

// SetHttpOnly sets the HttpOnly flag.
func (c *Cookie) SetHttpOnly(httpOnly bool) {
	c.httpOnly = httpOnly
	c.invalidate()
}

// SetPartitioned sets the Partitioned flag. Setting it forces Secure;
// clearing it leaves Secure as is.
func (c *Cookie) SetPartitioned(partitioned bool) {
	c.partitioned = partitioned
	if partitioned {
		c.secure = true
	}
	c.invalidate()
}

// SetSameSite stores the SameSite value verbatim. "None" (any case)
// forces Secure.
func (c *Cookie) SetSameSite(sameSite string) {
	c.sameSite = sameSite
	if asciiEqualFold(sameSite, SameSiteNone) {
		c.secure = true
	}
	c.invalidate()
}

func (c *Cookie) requiresSecure() bool {
	return c.partitioned || asciiEqualFold(c.sameSite, SameSiteNone)
}

func (c *Cookie) invalidate() {
	c.mu.Lock()
	c.dirty = true
	c.serialized = ""
	c.mu.Unlock()
}

// String returns the cookie in attribute-list form:
//
//	Name=Value[; Expires=…][; Domain=…][; Path=…][; SameSite=…]
//	[; Secure][; Partitioned][; HttpOnly]
//
// The result is computed once and reused until the next mutation. A
// cookie without a name serializes to "".
func (c *Cookie) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dirty || c.serialized == "" {
		c.serialized = c.serialize()
		c.dirty = false
	}
	return c.serialized
}

func (c *Cookie) serialize() string {
	if c.name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(c.name) + len(c.value) + len(c.domain) + len(c.path) + 96)
	b.WriteString(c.name)
	b.WriteByte('=')
	b.WriteString(c.value)
	if c.expires != "" {
		b.WriteString("; Expires=")
		b.WriteString(c.expires)
	}
	if c.domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.domain)
	}
	if c.path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.path)
	}
	if c.sameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(c.sameSite)
	}
	if c.secure {
		b.WriteString("; Secure")
	}
	if c.partitioned {
		b.WriteString("; Partitioned")
	}
	if c.httpOnly {
		b.WriteString("; HttpOnly")
	}
	return b.String()
}

// Clone returns a deep copy of the cookie with a fresh cache.
func (c *Cookie) Clone() *Cookie {
	return &Cookie{
		name:        c.name,
		value:       c.value,
		domain:      c.domain,
		path:        c.path,
		expires:     c.expires,
		sameSite:    c.sameSite,
		secure:      c.secure,
		httpOnly:    c.httpOnly,
		partitioned: c.partitioned,
		dirty:       true,
	}
}
