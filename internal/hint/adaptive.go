package hint

import "math"

const (
	// WindowSize is the number of recent correctness ratios considered.
	WindowSize = 3

	// NeutralRatio pads the window while fewer attempts exist.
	NeutralRatio = 0.7

	// perfectCutoff is the mean ratio above which no hint is shown.
	perfectCutoff = 0.98

	// ratioFloor bounds how much of the answer a hint may reveal.
	ratioFloor = 0.35
)

// NextStrength computes the hint strength to use on the next presentation
// of answer, from the line's most recent correctness ratios (each in
// [0,1], 1.0 = first-try exact match). A short history is padded with the
// neutral ratio. Returns 0 when recent performance is essentially perfect.
//
// Lower historical performance never yields a smaller strength than higher
// performance for the same answer.
func NextStrength(history []float64, answer string) int {
	ratio := windowMean(history)
	if ratio > perfectCutoff {
		return 0
	}

	switch {
	case ratio < 0.8:
		ratio -= 0.2
	case ratio < 0.9:
		ratio -= 0.1
	}
	if ratio < ratioFloor {
		ratio = ratioFloor
	}
	ratio = round9(ratio)

	maskable := Maskable(answer)
	return maskable - int(math.Floor(round9(float64(maskable)*ratio)))
}

// windowMean averages the newest WindowSize ratios, padding with the
// neutral default when history is shorter.
func windowMean(history []float64) float64 {
	if len(history) > WindowSize {
		history = history[:WindowSize]
	}
	sum := 0.0
	for _, r := range history {
		sum += r
	}
	for i := len(history); i < WindowSize; i++ {
		sum += NeutralRatio
	}
	return round9(sum / WindowSize)
}

// round9 snaps accumulated float error to nine decimal places, so means,
// adjusted ratios, and their products with the maskable count land on
// their branch and floor boundaries (0.8, 0.5, 7.0) instead of just
// under them.
func round9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
