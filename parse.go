package setcookie

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// ErrNoNameValue indicates an attribute-list string without a usable
// name/value pair.
var ErrNoNameValue = errors.New("setcookie: no name/value pair")

// maxAgeCeil bounds Max-Age before it is added to the clock. Anything
// this large already lands past year 9999.
const maxAgeCeil = 1 << 40

// Parser reads attribute-list strings into cookies. The zero value is
// not usable; create one with NewParser.
//
// By default, it uses:
//   - Clock:  time.Now
//   - Logger: discards everything
type Parser struct {
	now    func() time.Time
	logger *slog.Logger
}

var defaultParser = NewParser()

// NewParser returns a Parser with the default clock and logger.
//
// Returns:
//   - *Parser: The new Parser.
func NewParser() *Parser {
	return &Parser{
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithClock sets the clock used to resolve Max-Age and returns a new
// Parser.
//
// Parameters:
//   - now: The clock function.
//
// Returns:
//   - *Parser: The new Parser.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	new := *p
	new.now = now
	return &new
}

// WithLogger sets the logger that receives debug records about skipped
// attributes and returns a new Parser.
//
// Parameters:
//   - logger: The logger to use. nil restores the discarding logger.
//
// Returns:
//   - *Parser: The new Parser.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	new := *p
	new.logger = logger
	return &new
}

// Parse reads s into c and reports whether a name/value pair was found.
//
// The first non-empty parameter is always the cookie's own name/value
// pair. Every later parameter is matched case-insensitively against the
// known attributes; unknown ones are ignored. Fields not mentioned in s
// keep their previous values, and mutations made before a failure are
// not rolled back.
//
// Parameters:
//   - c: The cookie to populate.
//   - s: The attribute-list string, e.g. "a=b; Path=/; Secure".
//   - domain: An optional domain applied before s, possibly carrying
//     the "#HttpOnly_" marker. nil means none.
//
// Returns:
//   - bool: Whether a name/value pair was resolved.
func (p *Parser) Parse(c *Cookie, s string, domain *string) bool {
	defer c.invalidate()

	if domain != nil {
		c.SetDomain(*domain)
	}

	st := parseState{c: c, now: p.now()}
	nameSet := false
	for cursor := 0; ; {
		param, ok := nextParameter(s, ';', &cursor)
		if !ok {
			break
		}
		name, value, hasValue := splitNameValue(param)
		if name == "" {
			continue
		}
		if !nameSet {
			if !hasValue {
				p.logger.Debug("setcookie: first parameter has no value",
					"parameter", param)
				return false
			}
			c.SetName(name)
			c.SetValue(value)
			nameSet = true
			continue
		}
		handle, ok := attrHandlers[asciiLower(name)]
		if !ok {
			p.logger.Debug("setcookie: ignoring unknown attribute",
				"name", name)
			continue
		}
		if err := handle(&st, value); err != nil {
			p.logger.Debug("setcookie: ignoring attribute",
				"name", name, "error", err)
		}
	}
	if !nameSet {
		p.logger.Debug("setcookie: no name/value pair", "input", s)
	}
	return nameSet
}

// FromString parses s into c with the default parser.
func (c *Cookie) FromString(s string) bool {
	return defaultParser.Parse(c, s, nil)
}

// FromStringDomain parses s into c with the default parser after
// applying domain, which may carry the "#HttpOnly_" marker.
func (c *Cookie) FromStringDomain(s, domain string) bool {
	return defaultParser.Parse(c, s, &domain)
}

// ParseSetCookie parses a Set-Cookie value into a new cookie.
//
// Parameters:
//   - s: The attribute-list string.
//
// Returns:
//   - *Cookie: The parsed cookie.
//   - error: ErrNoNameValue if s has no name/value pair.
func ParseSetCookie(s string) (*Cookie, error) {
	c := &Cookie{dirty: true}
	if !defaultParser.Parse(c, s, nil) {
		return nil, fmt.Errorf("%w: %q", ErrNoNameValue, s)
	}
	return c, nil
}

type parseState struct {
	c         *Cookie
	now       time.Time
	maxAgeSet bool
}

type attrHandler func(st *parseState, value string) error

// attrHandlers is keyed by the ASCII-lowercased attribute name.
var attrHandlers = map[string]attrHandler{
	"domain": func(st *parseState, v string) error {
		st.c.SetDomain(v)
		return nil
	},
	"expires": func(st *parseState, v string) error {
		if st.maxAgeSet {
			return errors.New("overridden by Max-Age")
		}
		st.c.SetExpires(v)
		return nil
	},
	"httponly": func(st *parseState, _ string) error {
		st.c.SetHttpOnly(true)
		return nil
	},
	"max-age": func(st *parseState, v string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		n = max(n, 0)
		n = min(n, maxAgeCeil)
		st.c.SetExpiresAt(time.Unix(st.now.Unix()+n, 0))
		st.maxAgeSet = true
		return nil
	},
	"path": func(st *parseState, v string) error {
		st.c.SetPath(v)
		return nil
	},
	"secure": func(st *parseState, _ string) error {
		st.c.SetSecure(true)
		return nil
	},
	"samesite": func(st *parseState, v string) error {
		st.c.SetSameSite(v)
		return nil
	},
	"partitioned": func(st *parseState, _ string) error {
		st.c.SetPartitioned(true)
		return nil
	},
}

// nextParameter returns the text from *cursor up to the next sep and
// moves *cursor past it. The last parameter runs to the end of s. It
// returns false once *cursor has reached the end of s.
//
// Quoting is not honoured: a sep inside a quoted value still splits.
func nextParameter(s string, sep byte, cursor *int) (string, bool) {
	if *cursor >= len(s) {
		return "", false
	}
	rest := s[*cursor:]
	if i := strings.IndexByte(rest, sep); i >= 0 {
		*cursor += i + 1
		return rest[:i], true
	}
	*cursor = len(s)
	return rest, true
}

// splitNameValue splits param on its first '='. Leading spaces are
// trimmed from name and one layer of double quotes is stripped from
// both halves. hasValue is false for flag attributes such as "Secure".
func splitNameValue(param string) (name, value string, hasValue bool) {
	name, value, hasValue = strings.Cut(param, "=")
	name = strings.TrimLeft(name, " ")
	return unquote(name), unquote(value), hasValue
}

func unquote(s string) string {
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// normalizeDomain strips the "#HttpOnly_" jar marker and reports
// whether it was present.
func normalizeDomain(domain string) (string, bool) {
	return strings.CutPrefix(domain, httpOnlyPrefix)
}
