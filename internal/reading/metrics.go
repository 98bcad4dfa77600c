// Package reading implements the oral reading assessment flow: a
// deterministic metric calculation plus model-authored feedback.
package reading

import "math"

// ComputeMetrics converts elapsed time and word count into words per
// minute, accuracy, and fluency scores, each rounded to one decimal.
//
// Words per minute is unclamped: near-zero durations produce arbitrarily
// large values, which is accepted input sensitivity. Accuracy and fluency
// penalize reading faster than their thresholds (45 and 50 wpm) but are
// clamped so scores never leave [70, 100] and [65, 100]. Reading slower
// than a threshold is not penalized.
//
// Callers must reject non-positive inputs before calling.
func ComputeMetrics(durationSeconds, wordCount float64) (wpm, accuracy, fluency float64) {
	wpm = round1(wordCount / durationSeconds * 60)
	accuracy = round1(clamp(90-0.5*math.Max(0, wpm-45), 70, 100))
	fluency = round1(clamp(85-0.3*math.Max(0, wpm-50), 65, 100))
	return wpm, accuracy, fluency
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
