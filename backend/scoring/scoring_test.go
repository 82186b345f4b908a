package scoring

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		name        string
		location    string
		issue       string
		description string
		sentiment   float64

		expectScore int
	}{
		{
			name:        "School zone",
			location:    "School Zone",
			expectScore: 60,
		}, {
			name:        "Hospital area",
			location:    "Hospital Area",
			expectScore: 60,
		}, {
			name:        "Main highway",
			location:    "Main Highway",
			expectScore: 40,
		}, {
			name:        "Routine zone",
			location:    "Residential Area",
			expectScore: 10,
		}, {
			name:        "Zone match is case sensitive",
			location:    "school zone",
			expectScore: 10,
		}, {
			name:        "Zone match is exact",
			location:    "Main Highway North",
			expectScore: 10,
		}, {
			name:        "Keyword in description",
			location:    "Residential Area",
			issue:       "x",
			description: "There was a Fire",
			expectScore: 50,
		}, {
			name:        "Keyword is a substring, any case",
			location:    "Marketplace",
			issue:       "sparkler incident",
			expectScore: 50,
		}, {
			name:        "Upper case keyword in description",
			location:    "Marketplace",
			issue:       "broken",
			description: "WIRES hanging",
			expectScore: 50,
		}, {
			name:        "Danger bonus applies once",
			location:    "Marketplace",
			issue:       "Gas leak",
			description: "smoke and fire",
			expectScore: 50,
		}, {
			name:        "Sentiment truncates toward zero",
			location:    "Marketplace",
			sentiment:   0.79,
			expectScore: 17,
		}, {
			name:        "Negative sentiment truncates toward zero",
			location:    "Marketplace",
			sentiment:   -0.79,
			expectScore: 3,
		}, {
			name:        "No floor clamp",
			location:    "Marketplace",
			sentiment:   -5,
			expectScore: -40,
		}, {
			name:        "Clamped at 100",
			location:    "School Zone",
			issue:       "Exposed wire",
			sentiment:   5,
			expectScore: 100,
		}, {
			name:        "Exactly 100 without clamping",
			location:    "Hospital Area",
			issue:       "Gas leak",
			description: "near entrance",
			sentiment:   0,
			expectScore: 100,
		},
	}

	for _, testCase := range testCases {
		got := Score(testCase.location, testCase.issue, testCase.description, testCase.sentiment)
		if got != testCase.expectScore {
			t.Errorf("%s: expected score %d, got %d", testCase.name, testCase.expectScore, got)
		}
	}
}

func TestEvaluateBreakdown(t *testing.T) {
	res := Evaluate("Hospital Area", "Gas leak", "near entrance", 2.0)

	if res.Score != 100 {
		t.Errorf("expected score 100, got %d", res.Score)
	}
	if res.Raw != 120 {
		t.Errorf("expected raw score 120, got %d", res.Raw)
	}
	expect := []Adjustment{
		{Layer: LayerContext, Delta: 50, Running: 60},
		{Layer: LayerSemantics, Delta: 40, Running: 100},
		{Layer: LayerSentiment, Delta: 20, Running: 120},
	}
	if len(res.Adjustments) != len(expect) {
		t.Fatalf("expected %d adjustments, got %d", len(expect), len(res.Adjustments))
	}
	for i, e := range expect {
		a := res.Adjustments[i]
		if a.Layer != e.Layer || a.Delta != e.Delta || a.Running != e.Running {
			t.Errorf("adjustment %d: expected %+v, got %+v", i, e, a)
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	a := Evaluate("Main Highway", "Accident", "two cars", 1.5)
	b := Evaluate("Main Highway", "Accident", "two cars", 1.5)
	if a.Score != b.Score || a.Raw != b.Raw {
		t.Errorf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestSentimentAdjustmentSaturates(t *testing.T) {
	testCases := []struct {
		sentiment float64
		expect    int
	}{
		{3.7, 37},
		{-3.7, -37},
		{math.NaN(), 0},
		{math.Inf(1), maxSentimentDelta},
		{math.Inf(-1), math.MinInt32},
		{1e300, maxSentimentDelta},
	}
	for _, testCase := range testCases {
		if got := sentimentAdjustment(testCase.sentiment); got != testCase.expect {
			t.Errorf("sentimentAdjustment(%v): expected %d, got %d", testCase.sentiment, testCase.expect, got)
		}
	}
}

func TestHugeSentimentDoesNotOverflow(t *testing.T) {
	res := Evaluate("Hospital Area", "Gas leak", "", math.Inf(1))
	if res.Score != MaxScore {
		t.Errorf("expected score %d, got %d", MaxScore, res.Score)
	}
	if res.Raw != math.MaxInt32 {
		t.Errorf("expected raw %d, got %d", math.MaxInt32, res.Raw)
	}

	res = Evaluate("Residential Area", "", "", math.Inf(-1))
	if res.Raw != BaseScore+math.MinInt32 {
		t.Errorf("expected raw %d, got %d", BaseScore+math.MinInt32, res.Raw)
	}
}

func TestIsCritical(t *testing.T) {
	if IsCritical(80) {
		t.Error("80 must not be critical")
	}
	if !IsCritical(81) {
		t.Error("81 must be critical")
	}
}
