package setcookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
	"golang.org/x/net/idna"
)

// maxNamePlusValue is the limit most browsers apply to name+value.
const maxNamePlusValue = 4096

var (
	// ErrInvalidName indicates an empty name or one with non-token runes.
	ErrInvalidName = errors.New("setcookie: invalid name")
	// ErrInvalidValue indicates a value byte outside the cookie-octet set.
	ErrInvalidValue = errors.New("setcookie: invalid value")
	// ErrInvalidDomain indicates a domain that is not a valid host name.
	ErrInvalidDomain = errors.New("setcookie: invalid domain")
	// ErrInvalidExpires indicates an Expires value that is not an HTTP date.
	ErrInvalidExpires = errors.New("setcookie: invalid expires")
	// ErrInvalidSameSite indicates a SameSite value other than
	// Strict, Lax or None.
	ErrInvalidSameSite = errors.New("setcookie: invalid SameSite")
	// ErrSameSiteNoneNeedsSecure indicates SameSite=None without Secure.
	ErrSameSiteNoneNeedsSecure = errors.New("setcookie: SameSite=None requires Secure")
	// ErrPrefixRules indicates a "__Secure-" or "__Host-" name whose
	// attributes break the prefix rules.
	ErrPrefixRules = errors.New("setcookie: cookie prefix rules violated")
	// ErrTooLarge indicates that name+value exceed maxNamePlusValue.
	ErrTooLarge = errors.New("setcookie: cookie too large")
)

// Validate checks c against the Set-Cookie grammar and the browser
// rules the parser does not enforce. It returns the first violation.
//
// Returns:
//   - error: nil, or an error wrapping one of the Err* values.
func (c *Cookie) Validate() error {
	if !isCookieNameValid(c.name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, c.name)
	}
	if i := strings.IndexFunc(c.value, isNotCookieOctet); i >= 0 {
		return fmt.Errorf("%w: byte %q at %d", ErrInvalidValue, c.value[i], i)
	}
	if len(c.name)+len(c.value) > maxNamePlusValue {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(c.name)+len(c.value))
	}
	if c.domain != "" {
		host := strings.TrimPrefix(c.domain, ".")
		if _, err := idna.Lookup.ToASCII(host); err != nil || host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidDomain, c.domain)
		}
	}
	if c.expires != "" {
		if _, err := http.ParseTime(c.expires); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidExpires, c.expires)
		}
	}
	if c.sameSite != "" {
		if _, ok := StringToSameSite(c.sameSite); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSameSite, c.sameSite)
		}
		if asciiEqualFold(c.sameSite, SameSiteNone) && !c.secure {
			return ErrSameSiteNoneNeedsSecure
		}
	}
	return c.checkPrefix()
}

// checkPrefix enforces the "__Secure-" and "__Host-" name prefixes:
// both require Secure, and "__Host-" also requires Path "/" and no
// Domain.
func (c *Cookie) checkPrefix() error {
	switch {
	case strings.HasPrefix(c.name, "__Host-"):
		if !c.secure || c.path != "/" || c.domain != "" {
			return fmt.Errorf("%w: %q needs Secure, Path=/ and no Domain",
				ErrPrefixRules, c.name)
		}
	case strings.HasPrefix(c.name, "__Secure-"):
		if !c.secure {
			return fmt.Errorf("%w: %q needs Secure", ErrPrefixRules, c.name)
		}
	}
	return nil
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

func isCookieNameValid(raw string) bool {
	if raw == "" {
		return false
	}
	return strings.IndexFunc(raw, isNotToken) < 0
}

// isNotCookieOctet reports runes outside RFC 6265 cookie-octet, loosened
// to allow space and comma as net/http does.
func isNotCookieOctet(r rune) bool {
	return r < 0x20 || r >= 0x7f || r == '"' || r == ';' || r == '\\'
}
