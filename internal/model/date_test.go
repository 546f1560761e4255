package model

import (
	"testing"
	"time"
)

func TestDateRollover(t *testing.T) {
	cases := []struct {
		name string
		from Date
		days int
		want Date
	}{
		{"month boundary", NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 1)},
		{"year boundary", NewDate(2024, time.December, 31), 1, NewDate(2025, time.January, 1)},
		{"leap day forward", NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{"leap day backward", NewDate(2024, time.March, 1), -1, NewDate(2024, time.February, 29)},
		{"non-leap february", NewDate(2023, time.March, 1), -1, NewDate(2023, time.February, 28)},
		{"backward year boundary", NewDate(2025, time.January, 1), -1, NewDate(2024, time.December, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.AddDays(tc.days); got != tc.want {
				t.Fatalf("AddDays(%d) from %s = %s, want %s", tc.days, tc.from, got, tc.want)
			}
		})
	}
}

func TestNextRepeatedEqualsAddDays(t *testing.T) {
	start := NewDate(2023, time.November, 14)
	cur := start
	for i := 0; i < 500; i++ {
		cur = cur.Next()
	}
	if want := start.AddDays(500); cur != want {
		t.Fatalf("500 Next steps reached %s, want %s", cur, want)
	}
	for i := 0; i < 500; i++ {
		cur = cur.Prev()
	}
	if cur != start {
		t.Fatalf("walking back 500 days reached %s, want %s", cur, start)
	}
}

func TestNewDateNormalizes(t *testing.T) {
	got := NewDate(2024, time.February, 30)
	if want := NewDate(2024, time.March, 1); got != want {
		t.Fatalf("NewDate(2024, Feb, 30) = %s, want %s", got, want)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	parsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("ParseDate(%q) error: %v", d.String(), err)
	}
	if parsed != d {
		t.Fatalf("round trip produced %s, want %s", parsed, d)
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.February, 29)
	b := NewDate(2024, time.March, 1)
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if !b.After(a) {
		t.Fatalf("expected %s after %s", b, a)
	}
}
