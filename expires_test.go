package setcookie

import (
	"testing"
	"time"
)

func TestFormatExpires(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{testNow, testNowText},
		{time.Date(2023, time.October, 21, 7, 28, 0, 0, time.UTC), "Sat, 21 Oct 2023 07:28:00 GMT"},
		{time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC), "Fri, 31 Dec 1999 23:59:59 GMT"},
		{time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC), "Sun, 07 Jan 2024 00:00:00 GMT"},
	}
	for _, tc := range cases {
		got, ok := FormatExpires(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("FormatExpires(%v) = %q, %v; want %q", tc.in, got, ok, tc.want)
		}
		if len(got) != 29 {
			t.Fatalf("len(%q) = %d", got, len(got))
		}
	}
}

func TestFormatExpires_UTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	got, ok := FormatExpires(time.Date(2024, time.March, 5, 8, 7, 8, 0, zone))
	if !ok || got != testNowText {
		t.Fatalf("got %q %v", got, ok)
	}
}

func TestFormatExpires_Rejects(t *testing.T) {
	for _, tm := range []time.Time{
		{},
		time.Unix(0, 0),
		time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(-1, time.January, 1, 0, 0, 0, 0, time.UTC),
	} {
		if s, ok := FormatExpires(tm); ok {
			t.Fatalf("FormatExpires(%v) = %q, want failure", tm, s)
		}
	}
}

func TestSetExpiresAt_LeavesValueOnSentinel(t *testing.T) {
	c := New("a", "b", "", "", false, time.Time{}, "")
	c.SetExpires("literal date")
	c.SetExpiresAt(time.Time{})
	c.SetExpiresUnix(0)
	c.SetExpiresAt(time.Date(12000, time.January, 1, 0, 0, 0, 0, time.UTC))
	if c.Expires() != "literal date" {
		t.Fatalf("expires changed: %q", c.Expires())
	}
	c.SetExpires("")
	if !c.IsSessionCookie() {
		t.Fatalf("empty expires should be a session cookie")
	}
}

func TestExpiresTime(t *testing.T) {
	c := New("a", "b", "", "", false, testNow, "")
	got, ok := c.ExpiresTime()
	if !ok || !got.Equal(testNow) {
		t.Fatalf("got %v %v", got, ok)
	}
	c.SetExpires("not a date")
	if _, ok := c.ExpiresTime(); ok {
		t.Fatalf("bad date should not parse")
	}
	c.SetExpires("")
	if _, ok := c.ExpiresTime(); ok {
		t.Fatalf("session cookie has no expiry time")
	}
}
