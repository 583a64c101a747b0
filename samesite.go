package setcookie

import (
	"fmt"
	"net/http"
)

// Canonical SameSite attribute values.
const (
	SameSiteStrict = "Strict"
	SameSiteLax    = "Lax"
	SameSiteNone   = "None"
)

// StringToSameSite converts a SameSite attribute value to http.SameSite,
// ignoring ASCII case. An empty string maps to http.SameSiteDefaultMode.
//
// Parameters:
//   - s: The string to convert.
//
// Returns:
//   - http.SameSite: The http.SameSite value.
//   - bool: Whether s was recognized.
func StringToSameSite(s string) (http.SameSite, bool) {
	switch asciiLower(s) {
	case "":
		return http.SameSiteDefaultMode, true
	case "none":
		return http.SameSiteNoneMode, true
	case "lax":
		return http.SameSiteLaxMode, true
	case "strict":
		return http.SameSiteStrictMode, true
	default:
		return 0, false
	}
}

// MustStringToSameSite converts a string to http.SameSite and panics
// if the string is invalid.
//
// Parameters:
//   - s: The string to convert.
//
// Returns:
//   - http.SameSite: The http.SameSite value.
func MustStringToSameSite(s string) http.SameSite {
	ss, ok := StringToSameSite(s)
	if !ok {
		panic(fmt.Sprintf("setcookie: invalid SameSite value: %q", s))
	}
	return ss
}

// SameSiteToString converts an http.SameSite value to its canonical
// attribute value. http.SameSiteDefaultMode and 0 map to "".
//
// Parameters:
//   - s: The http.SameSite value.
//
// Returns:
//   - string: The attribute value.
//   - bool: Whether s was recognized.
func SameSiteToString(s http.SameSite) (string, bool) {
	switch s {
	case 0, http.SameSiteDefaultMode:
		return "", true
	case http.SameSiteNoneMode:
		return SameSiteNone, true
	case http.SameSiteLaxMode:
		return SameSiteLax, true
	case http.SameSiteStrictMode:
		return SameSiteStrict, true
	default:
		return "", false
	}
}

// MustSameSiteToString converts an http.SameSite value to its string
// representation and panics if the value is invalid.
func MustSameSiteToString(s http.SameSite) string {
	str, ok := SameSiteToString(s)
	if !ok {
		panic(fmt.Sprintf("setcookie: invalid SameSite value: %v", s))
	}
	return str
}
