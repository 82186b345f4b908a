// Package scoring computes the priority of a civic report from its location,
// text and caller-supplied sentiment. It has no I/O and is safe for concurrent use.
package scoring

import (
	"math"
	"strings"
)

const (
	BaseScore = 10
	MaxScore  = 100

	CriticalZoneBonus = 50
	HighTrafficBonus  = 30
	DangerBonus       = 40

	// Reports scoring strictly above this are critical.
	CriticalThreshold = 80

	sentimentScale = 10

	// Largest sentiment delta whose sum with every bonus still fits in 32 bits.
	maxSentimentDelta = math.MaxInt32 - (BaseScore + CriticalZoneBonus + DangerBonus)
)

type Layer string

const (
	LayerContext   Layer = "context"
	LayerSemantics Layer = "semantics"
	LayerSentiment Layer = "sentiment"
)

// Zone names are matched exactly and case-sensitively.
var (
	criticalZones = map[string]bool{
		"School Zone":   true,
		"Hospital Area": true,
	}
	highTrafficZones = map[string]bool{
		"Main Highway": true,
	}
)

// Matched as case-insensitive substrings, so "Sparkle" hits "spark".
var dangerKeywords = []string{
	"Gas", "Leak", "Fire", "Spark", "Wire", "Manhole", "Explosion", "Accident", "Blood", "Smoke",
}

// Adjustment records what one layer contributed.
type Adjustment struct {
	Layer   Layer  `json:"layer"`
	Delta   int    `json:"delta"`
	Running int    `json:"running"`
	Reason  string `json:"reason"`
}

// Result is the full breakdown behind a priority score.
type Result struct {
	Score       int          `json:"score"`
	Raw         int          `json:"raw"`
	Adjustments []Adjustment `json:"adjustments"`
}

// Evaluate runs the three scoring layers on top of BaseScore and clamps the sum at MaxScore.
// There is no lower clamp: a strongly negative sentiment yields a negative score.
func Evaluate(location, issue, description string, sentiment float64) Result {
	score := BaseScore
	res := Result{Adjustments: make([]Adjustment, 0, 3)}

	add := func(layer Layer, delta int, reason string) {
		score += delta
		res.Adjustments = append(res.Adjustments, Adjustment{
			Layer:   layer,
			Delta:   delta,
			Running: score,
			Reason:  reason,
		})
	}

	delta, reason := contextAdjustment(location)
	add(LayerContext, delta, reason)

	delta, reason = semanticAdjustment(issue, description)
	add(LayerSemantics, delta, reason)

	add(LayerSentiment, sentimentAdjustment(sentiment), "caller sentiment")

	res.Raw = score
	res.Score = min(score, MaxScore)
	return res
}

// Score returns only the final priority score.
func Score(location, issue, description string, sentiment float64) int {
	return Evaluate(location, issue, description, sentiment).Score
}

// IsCritical reports whether a priority score counts as critical.
func IsCritical(score int) bool {
	return score > CriticalThreshold
}

func contextAdjustment(location string) (int, string) {
	switch {
	case criticalZones[location]:
		return CriticalZoneBonus, "critical zone"
	case highTrafficZones[location]:
		return HighTrafficBonus, "high traffic zone"
	default:
		return 0, "routine zone"
	}
}

func semanticAdjustment(issue, description string) (int, string) {
	if kw, ok := findDangerKeyword(issue + " " + description); ok {
		return DangerBonus, "danger keyword " + kw
	}
	return 0, "routine"
}

func findDangerKeyword(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, kw := range dangerKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

// sentimentAdjustment scales by ten and truncates toward zero. Out of range values
// saturate so the raw sum never overflows a 32-bit int; NaN contributes nothing.
func sentimentAdjustment(sentiment float64) int {
	scaled := sentiment * sentimentScale
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= maxSentimentDelta:
		return maxSentimentDelta
	case scaled <= math.MinInt32:
		return math.MinInt32
	}
	return int(scaled)
}
