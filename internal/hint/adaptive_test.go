package hint

import "testing"

func TestNextStrength_PerfectHistory(t *testing.T) {
	if got := NextStrength([]float64{1.0, 1.0, 1.0}, "buenos dias"); got != 0 {
		t.Errorf("strength = %d, want 0 for perfect history", got)
	}
}

func TestNextStrength_NeutralPadding(t *testing.T) {
	// Empty history means a full window of the neutral 0.7 ratio:
	// 0.7 < 0.8 so the adjusted ratio is 0.5.
	// "translate" has 9 maskable chars: 9 - floor(9*0.5) = 5.
	if got := NextStrength(nil, "translate"); got != 5 {
		t.Errorf("strength = %d, want 5", got)
	}

	// One perfect attempt padded with two neutrals: mean = (1.0+0.7+0.7)/3 = 0.8,
	// adjusted to 0.7: 9 - floor(9*0.7) = 3.
	if got := NextStrength([]float64{1.0}, "translate"); got != 3 {
		t.Errorf("strength = %d, want 3", got)
	}
}

func TestNextStrength_DecimalBoundaries(t *testing.T) {
	// Sums like 1.0+0.7+0.7 accumulate float error just under 2.4; the
	// mean must still count as exactly 0.8 and take the subtract-0.1
	// branch, not the subtract-0.2 one below it.
	cases := []struct {
		history []float64
		answer  string
		want    int
	}{
		{[]float64{1.0, 0.7, 0.7}, "translate", 3},  // mean 0.8 -> 0.7 -> 9-floor(6.3)
		{[]float64{0.9, 0.9, 0.9}, "translate", 1},  // mean 0.9 -> untouched -> 9-floor(8.1)
		{[]float64{1.0, 0.7, 0.7}, "abcdefghij", 3}, // 10*0.7 must floor as 7.0, not 6.999...
		{nil, "abcdefghij", 5},                      // mean 0.7 -> 0.5 -> 10-floor(5.0) exactly
	}
	for _, tc := range cases {
		if got := NextStrength(tc.history, tc.answer); got != tc.want {
			t.Errorf("NextStrength(%v, %q) = %d, want %d", tc.history, tc.answer, got, tc.want)
		}
	}
}

func TestNextStrength_FloorClamp(t *testing.T) {
	// Mean 0 adjusts to -0.2, clamped to 0.35: 10 - floor(10*0.35) = 7.
	if got := NextStrength([]float64{0, 0, 0}, "abcdefghij"); got != 7 {
		t.Errorf("strength = %d, want 7", got)
	}
}

func TestNextStrength_MonotonicInMean(t *testing.T) {
	answer := "the quick brown fox"
	prev := -1
	// Walk the mean upward; strength must never increase.
	for i := 0; i <= 100; i++ {
		mean := float64(i) / 100
		got := NextStrength([]float64{mean, mean, mean}, answer)
		if prev >= 0 && got > prev {
			t.Fatalf("strength increased from %d to %d at mean %.2f", prev, got, mean)
		}
		prev = got
	}
}

func TestNextStrength_UsesNewestWindow(t *testing.T) {
	// Older entries beyond the window must be ignored.
	recent := []float64{1.0, 1.0, 1.0, 0.0, 0.0, 0.0}
	if got := NextStrength(recent, "whatever"); got != 0 {
		t.Errorf("strength = %d, want 0 (only newest 3 ratios count)", got)
	}
}

func TestWindow_PushAndOrder(t *testing.T) {
	w := NewWindow([]float64{0.9, 0.8, 0.7, 0.1})
	got := w.Ratios()
	if len(got) != WindowSize {
		t.Fatalf("window kept %d ratios, want %d", len(got), WindowSize)
	}
	if got[0] != 0.9 {
		t.Errorf("newest ratio = %v, want 0.9", got[0])
	}

	w.Push(1.0)
	got = w.Ratios()
	if got[0] != 1.0 {
		t.Errorf("newest after push = %v, want 1.0", got[0])
	}
	if len(got) != WindowSize {
		t.Errorf("window grew past %d: %v", WindowSize, got)
	}
	if got[WindowSize-1] != 0.8 {
		t.Errorf("oldest after push = %v, want 0.8", got[WindowSize-1])
	}
}
