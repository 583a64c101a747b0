// Package setcookie models a single HTTP cookie as stored by a client
// cookie jar. It includes:
//
//   - Cookie, a record of name, value and attributes with typed accessors.
//   - Parser, which reads the "Set-Cookie" attribute-list form and the
//     legacy Netscape/curl jar conventions ("#HttpOnly_" domains,
//     "unknown" paths).
//   - A canonical serializer with a fixed attribute order, cached until
//     the next mutation.
//   - RFC1123 Expires formatting from absolute times and Max-Age.
//   - SameSite converters and net/http bridges (ToHTTP, FromHTTP,
//     ReadSetCookies, HeaderWriter).
//   - Validate for callers that need stricter checks than the parser.
//
// Notes:
//   - Partitioned and SameSite=None both force Secure.
//   - Max-Age always wins over Expires, whatever their order.
//   - Parsing never fails on a bad attribute; it only reports whether a
//     name/value pair was found.
//   - Semicolons inside quoted values are not supported.
package setcookie
