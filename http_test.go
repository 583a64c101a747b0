package setcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func getCookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	resp := rec.Result()
	for _, c := range resp.Cookies() {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

func TestHeaderWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	var w Writer = NewHeaderWriter(rec)
	c := New("sess", "abc", "example.com", "/", false, testNow, "None")
	c.SetPartitioned(true)
	c.SetHttpOnly(true)
	w.WriteCookie(c)
	w.WriteCookie(&Cookie{})

	if got := rec.Header().Values("Set-Cookie"); len(got) != 1 || got[0] != c.String() {
		t.Fatalf("Set-Cookie headers: %q", got)
	}
	hc := getCookieByName(t, rec, "sess")
	if hc == nil {
		t.Fatalf("cookie not written")
	}
	if hc.Value != "abc" || hc.Domain != "example.com" || hc.Path != "/" {
		t.Fatalf("unexpected cookie: %+v", hc)
	}
	if !hc.Secure || !hc.HttpOnly || !hc.Partitioned || hc.SameSite != http.SameSiteNoneMode {
		t.Fatalf("unexpected flags: %+v", hc)
	}
	if !hc.Expires.Equal(testNow) {
		t.Fatalf("expires=%v", hc.Expires)
	}
}

func TestReadSetCookies(t *testing.T) {
	h := http.Header{}
	h.Add("Set-Cookie", "a=1; Path=/; Secure")
	h.Add("Set-Cookie", "HttpOnly")
	h.Add("Set-Cookie", "b=2; Domain=b.example")

	cookies := ReadSetCookies(h, "#HttpOnly_default.example")
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	if cookies[0].Name() != "a" || cookies[0].Domain() != "default.example" || !cookies[0].HttpOnly() {
		t.Fatalf("first cookie: %s", cookies[0])
	}
	if cookies[1].Name() != "b" || cookies[1].Domain() != "b.example" {
		t.Fatalf("second cookie: %s", cookies[1])
	}

	cookies = ReadSetCookies(h, "")
	if cookies[0].Domain() != "" || cookies[0].HttpOnly() {
		t.Fatalf("no override expected: %s", cookies[0])
	}
}

func TestToHTTP(t *testing.T) {
	c := New("n", "v", "example.com", "/p", true, testNow, "strict")
	hc := c.ToHTTP()
	if hc.Name != "n" || hc.Value != "v" || hc.Domain != "example.com" || hc.Path != "/p" {
		t.Fatalf("unexpected: %+v", hc)
	}
	if !hc.Secure || hc.SameSite != http.SameSiteStrictMode {
		t.Fatalf("flags: %+v", hc)
	}
	if !hc.Expires.Equal(testNow) || hc.RawExpires != testNowText {
		t.Fatalf("expires=%v raw=%q", hc.Expires, hc.RawExpires)
	}

	c.SetExpires("whenever")
	c.SetSameSite("Sometimes")
	hc = c.ToHTTP()
	if !hc.Expires.IsZero() || hc.RawExpires != "whenever" || hc.SameSite != 0 {
		t.Fatalf("unparseable attributes: %+v", hc)
	}
}

func TestFromHTTP(t *testing.T) {
	p := testParser()
	c := p.FromHTTP(&http.Cookie{
		Name:     "n",
		Value:    "v",
		Domain:   "#HttpOnly_example.com",
		Path:     "unknown",
		MaxAge:   60,
		Expires:  time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		SameSite: http.SameSiteNoneMode,
	})
	if c.Domain() != "example.com" || !c.HttpOnly() || c.Path() != "" {
		t.Fatalf("jar conventions not applied: %s", c)
	}
	if c.Expires() != "Tue, 05 Mar 2024 06:08:08 GMT" {
		t.Fatalf("MaxAge should win over Expires: %q", c.Expires())
	}
	if c.SameSite() != "None" || !c.Secure() {
		t.Fatalf("samesite=%q secure=%v", c.SameSite(), c.Secure())
	}

	c = p.FromHTTP(&http.Cookie{Name: "n", MaxAge: -1})
	if c.Expires() != testNowText {
		t.Fatalf("negative MaxAge should expire now: %q", c.Expires())
	}
	c = p.FromHTTP(&http.Cookie{Name: "n", RawExpires: "raw date"})
	if c.Expires() != "raw date" {
		t.Fatalf("raw expires: %q", c.Expires())
	}
	c = p.FromHTTP(&http.Cookie{Name: "n", Partitioned: true})
	if !c.Secure() || !c.IsSessionCookie() {
		t.Fatalf("partitioned: %s", c)
	}
	if p.FromHTTP(nil) != nil {
		t.Fatalf("nil cookie should convert to nil")
	}
}

func TestSameSiteConverters(t *testing.T) {
	if v, ok := StringToSameSite("LAX"); !ok || v != http.SameSiteLaxMode {
		t.Fatalf("StringToSameSite LAX")
	}
	if v, ok := StringToSameSite(""); !ok || v != http.SameSiteDefaultMode {
		t.Fatalf("StringToSameSite empty")
	}
	if s, ok := SameSiteToString(http.SameSiteStrictMode); !ok || s != "Strict" {
		t.Fatalf("SameSiteToString strict")
	}
	if MustSameSiteToString(http.SameSiteNoneMode) != SameSiteNone {
		t.Fatalf("MustSameSiteToString none")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustStringToSameSite should panic")
		}
	}()
	_ = MustStringToSameSite("unknown")
}
