package report

import "testing"

func TestRankForBoundaries(t *testing.T) {
	tests := []struct {
		score      int
		letter     string
		percentile string
	}{
		{0, "F", "하위 20%"},
		{49, "F", "하위 20%"},
		{50, "D", "하위 40%"},
		{59, "D", "하위 40%"},
		{60, "C", "평균 수준"},
		{69, "C", "평균 수준"},
		{70, "B", "상위 40%"},
		{79, "B", "상위 40%"},
		{80, "A", "상위 20%"},
		{89, "A", "상위 20%"},
		{90, "S", "상위 10%"},
		{100, "S", "상위 10%"},
	}
	for _, tt := range tests {
		r := RankFor(tt.score)
		if r.Letter != tt.letter {
			t.Errorf("RankFor(%d).Letter = %q, want %q", tt.score, r.Letter, tt.letter)
		}
		if r.Percentile != tt.percentile {
			t.Errorf("RankFor(%d).Percentile = %q, want %q", tt.score, r.Percentile, tt.percentile)
		}
	}
}

func TestRankMonotonicity(t *testing.T) {
	order := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4, "S": 5}
	prev := RankFor(0)
	for s := 1; s <= 100; s++ {
		cur := RankFor(s)
		if order[cur.Letter] < order[prev.Letter] {
			t.Fatalf("rank regressed from %s at %d to %s at %d", prev.Letter, s-1, cur.Letter, s)
		}
		prev = cur
	}
}

func TestRankBandCoverage(t *testing.T) {
	valid := map[string]bool{"S": true, "A": true, "B": true, "C": true, "D": true, "F": true}
	for s := 0; s <= 100; s++ {
		r := RankFor(s)
		if !valid[r.Letter] {
			t.Errorf("RankFor(%d) returned unknown letter %q", s, r.Letter)
		}
	}
	// out-of-range inputs still classify without failing
	if RankFor(-10).Letter != "F" {
		t.Errorf("RankFor(-10) = %q, want F", RankFor(-10).Letter)
	}
	if RankFor(150).Letter != "S" {
		t.Errorf("RankFor(150) = %q, want S", RankFor(150).Letter)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		score int
		want  ColorToken
	}{
		{0, ColorFail},
		{59, ColorFail},
		{60, ColorPass},
		{100, ColorPass},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.score); got != tt.want {
			t.Errorf("ColorFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89, BandGood},
		{80, BandGood},
		{79, BandFair},
		{70, BandFair},
		{69, BandMiddling},
		{60, BandMiddling},
		{59, BandPoor},
		{50, BandPoor},
		{49, BandCritical},
		{0, BandCritical},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDerivedSEOFallback(t *testing.T) {
	s := Score{Performance: 75, Accessibility: 80}
	if got := s.DerivedSEO(); got != 78 {
		t.Errorf("DerivedSEO() = %d, want 78 (round((75+80)/2))", got)
	}

	seo := 42
	s.SEO = &seo
	if got := s.DerivedSEO(); got != 42 {
		t.Errorf("DerivedSEO() with explicit score = %d, want 42", got)
	}
}

func TestSEOReportOrDefault(t *testing.T) {
	r := AnalysisResult{Score: Score{Performance: 70, Accessibility: 60}}
	rep := r.SEOReportOrDefault()
	if rep.Score != r.Score.DerivedSEO() {
		t.Errorf("default SEO report score = %d, want derived %d", rep.Score, r.Score.DerivedSEO())
	}

	r.SEO = &SEOReport{Score: 88}
	if got := r.SEOReportOrDefault().Score; got != 88 {
		t.Errorf("explicit SEO report score = %d, want 88", got)
	}
}
