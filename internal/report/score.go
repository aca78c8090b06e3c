// internal/report/score.go
package report

// ColorToken is the pass/fail color applied to rendered scores
type ColorToken string

const (
	ColorPass ColorToken = "#22c55e"
	ColorFail ColorToken = "#ef4444"

	// passThreshold is the single pass/attention boundary used for
	// score coloring across all report surfaces
	passThreshold = 60
)

// ColorFor maps a score to its display color: pass at 60 and above
func ColorFor(score int) ColorToken {
	if score >= passThreshold {
		return ColorPass
	}
	return ColorFail
}

// Rank is the letter classification derived from the overall score
type Rank struct {
	Letter      string `json:"letter"`
	Percentile  string `json:"percentile"`
	Description string `json:"description"`
}

// RankFor maps a score to its letter grade. Breakpoints are inclusive on
// the lower bound and checked in descending order, first match wins.
func RankFor(score int) Rank {
	switch {
	case score >= 90:
		return Rank{Letter: "S", Percentile: "상위 10%", Description: "업계 최상위 수준의 UI/UX입니다"}
	case score >= 80:
		return Rank{Letter: "A", Percentile: "상위 20%", Description: "우수한 수준의 UI/UX입니다"}
	case score >= 70:
		return Rank{Letter: "B", Percentile: "상위 40%", Description: "양호한 수준이지만 개선 여지가 있습니다"}
	case score >= 60:
		return Rank{Letter: "C", Percentile: "평균 수준", Description: "평균 수준으로 개선이 필요합니다"}
	case score >= 50:
		return Rank{Letter: "D", Percentile: "하위 40%", Description: "개선이 시급한 수준입니다"}
	default:
		return Rank{Letter: "F", Percentile: "하위 20%", Description: "전면적인 개선이 필요합니다"}
	}
}

// Band is the six-level interpretation band applied uniformly to every
// score axis in generated documents
type Band int

const (
	BandCritical Band = iota
	BandPoor
	BandMiddling
	BandFair
	BandGood
	BandExcellent
)

// BandFor maps a score to its interpretation band using the same
// descending first-match breakpoints for every axis
func BandFor(score int) Band {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 80:
		return BandGood
	case score >= 70:
		return BandFair
	case score >= 60:
		return BandMiddling
	case score >= 50:
		return BandPoor
	default:
		return BandCritical
	}
}
