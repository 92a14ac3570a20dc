package hint

// Window is the per-line rolling record of recent correctness ratios,
// newest first. It belongs to whichever session is reviewing the line;
// there are never concurrent writers.
type Window struct {
	ratios []float64
}

// NewWindow builds a window from ratios ordered newest first, as the
// persistence layer returns them. Only the newest WindowSize are kept.
func NewWindow(newestFirst []float64) *Window {
	w := &Window{}
	for _, r := range newestFirst {
		if len(w.ratios) == WindowSize {
			break
		}
		w.ratios = append(w.ratios, r)
	}
	return w
}

// Ratios returns the recorded ratios, newest first, without padding.
func (w *Window) Ratios() []float64 {
	return append([]float64(nil), w.ratios...)
}

// Push records the newest ratio, dropping the oldest beyond the window.
//
// The session must compute the next hint strength from the pre-push
// window, so that a hint reflects only strictly prior attempts.
func (w *Window) Push(ratio float64) {
	w.ratios = append([]float64{ratio}, w.ratios...)
	if len(w.ratios) > WindowSize {
		w.ratios = w.ratios[:WindowSize]
	}
}
