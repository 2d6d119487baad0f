package analyzer

// Point values of the scoring table.
const (
	pointsMinLength  = 20 // length >= MinLength
	pointsGoodLength = 10 // length >= GoodLength, on top of the above
	pointsLongLength = 10 // length >= LongLength, on top of the above

	pointsPerClass = 10 // per character class present

	varietyThreshold = 3  // classes needed for the variety bonus
	bonusVariety     = 10 // at least varietyThreshold classes
	bonusFullVariety = 10 // all four classes, on top of bonusVariety

	penaltyPerWarning = 15

	allClasses = 4
	minScore   = 0
	maxScore   = 100
)

// computeScore applies the scoring table and clamps the sum to [0, 100].
func computeScore(length, classes, warnings int) int {
	score := lengthPoints(length)

	score += classes * pointsPerClass
	if classes >= varietyThreshold {
		score += bonusVariety
	}
	if classes == allClasses {
		score += bonusFullVariety
	}

	score -= warnings * penaltyPerWarning

	return clamp(score, minScore, maxScore)
}

// lengthPoints returns the cumulative length points.
func lengthPoints(length int) int {
	points := 0
	if length >= MinLength {
		points += pointsMinLength
	}
	if length >= GoodLength {
		points += pointsGoodLength
	}
	if length >= LongLength {
		points += pointsLongLength
	}
	return points
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
