package profile

import "testing"

func TestScore_Bands(t *testing.T) {
	cases := []struct {
		name                       string
		years, durationMo, changes int
		want                       int
	}{
		{"veteran stable", 10, 36, 0, 100},           // 50+40+30+20 clamped
		{"solid", 5, 12, 1, 100},                     // 50+30+20+20 = 120 -> 100
		{"mid", 3, 6, 2, 90},                         // 50+20+10+10
		{"junior", 1, 3, 3, 65},                      // 50+10+0+5
		{"fresh", 0, 0, 0, 70},                       // 50+0+0+20
		{"job hopper", 0, 0, 10, 15},                 // 50 - 35
		{"extreme hopper clamps at zero", 0, 0, 14, 0}, // 50 - 55 -> 0
	}
	for _, tc := range cases {
		if got := Score(tc.years, tc.durationMo, tc.changes); got != tc.want {
			t.Fatalf("%s: Score = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestTierForScore(t *testing.T) {
	cases := map[int]int{100: 1, 80: 1, 79: 2, 65: 2, 64: 3, 50: 3, 49: 4, 35: 4, 34: 5, 0: 5}
	for score, want := range cases {
		if got := TierForScore(score); got != want {
			t.Fatalf("TierForScore(%d) = %d, want %d", score, got, want)
		}
	}
}
