package analyzer

// Confidence thresholds. Sample sizes are in records (28 ≈ four weeks
// of daily history, 56 ≈ eight); effect strength is whatever magnitude
// the calling detector treats as its signal: a variance, a percentage,
// or a percentage-point gap.
const (
	highConfidenceSamples = 56
	highConfidenceEffect  = 30.0

	mediumConfidenceSamples = 28
	mediumConfidenceEffect  = 20.0
)

// Confidence classifies how much a conclusion should be trusted given
// the sample size behind it and the strength of the observed effect.
// Both thresholds are inclusive. Pure lookup, no side effects.
func Confidence(sampleSize int, effectStrength float64) ConfidenceLevel {
	switch {
	case sampleSize >= highConfidenceSamples && effectStrength >= highConfidenceEffect:
		return ConfidenceHigh
	case sampleSize >= mediumConfidenceSamples && effectStrength >= mediumConfidenceEffect:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
