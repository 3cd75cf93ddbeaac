package usecase

import "math"

// Presentation bands for the match score bar, split at 40 and 70 (inclusive
// lower bounds).
const (
	BandLow  = "low"
	BandMid  = "mid"
	BandHigh = "high"
)

// MatchPercent maps the remote 0-10 score onto a 0-100 bar, clamped.
func MatchPercent(score float64) int {
	percent := int(math.Round(score / 10 * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ColorBand classifies a match percentage for presentation.
func ColorBand(percent int) string {
	if percent < 40 {
		return BandLow
	}
	if percent < 70 {
		return BandMid
	}
	return BandHigh
}

// BarColor returns the hex color the dashboard paints the score bar with.
func BarColor(percent int) string {
	switch ColorBand(percent) {
	case BandLow:
		return "#ef4444"
	case BandMid:
		return "#f59e0b"
	default:
		return "#22c55e"
	}
}

// PieSplit turns matched/missing skill counts into two complementary
// percentages. ok is false when there are no skills at all, in which case the
// pie renders in its neutral "no data" state.
func PieSplit(matchedCount, missingCount int) (matchedPercent, missingPercent int, ok bool) {
	total := matchedCount + missingCount
	if total == 0 {
		return 0, 0, false
	}
	matchedPercent = int(math.Round(float64(matchedCount) / float64(total) * 100))
	return matchedPercent, 100 - matchedPercent, true
}
