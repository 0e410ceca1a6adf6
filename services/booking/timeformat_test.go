package booking

import "testing"

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:30", "12:30 AM"},
		{"13:15", "1:15 PM"},
		{"12:00", "12:00 PM"},
		{"14:00", "2:00 PM"},
		{"09:05", "9:05 AM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		if got := NormalizeTime(tc.in); got != tc.want {
			t.Fatalf("NormalizeTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTime_MalformedPassesThrough(t *testing.T) {
	for _, raw := range []string{"abc", "abc:30", "", "1400"} {
		if got := NormalizeTime(raw); got != raw {
			t.Fatalf("NormalizeTime(%q) = %q, want raw passthrough", raw, got)
		}
	}
}
