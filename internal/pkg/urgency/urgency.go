// Package urgency classifies and ranks fleet entities by how soon they need
// attention. Everything in here is pure: same input, same output, no I/O.
package urgency

import (
	"math"
	"time"
)

// Level is an urgency bucket, ordered by severity.
type Level string

const (
	LevelCritical Level = "critical"
	LevelWarning  Level = "warning"
	LevelNormal   Level = "normal"
	LevelUnknown  Level = "unknown"
)

// Severity returns the sort rank of the level, most severe first.
func (l Level) Severity() int {
	switch l {
	case LevelCritical:
		return 0
	case LevelWarning:
		return 1
	case LevelNormal:
		return 2
	default:
		return 3
	}
}

// Confidence describes how much signal backed a classification. Informational
// only, never a sort key.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Thresholds is the single place the urgency cutoffs live. Days remaining is
// the primary signal, current level the fallback; both boundaries are
// inclusive on the lower (more urgent) bucket.
type Thresholds struct {
	CriticalDays  float64
	WarningDays   float64
	CriticalLevel float64
	WarningLevel  float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalDays:  3,
		WarningDays:   7,
		CriticalLevel: 20,
		WarningLevel:  35,
	}
}

// Classify resolves an entity to exactly one bucket. Nil, NaN and Inf inputs
// fall through to the next rule, so the function is total: any combination of
// inputs yields a defined bucket. Negative daysRemaining means overdue and is
// still critical.
func (t Thresholds) Classify(daysRemaining, currentLevel *float64) Level {
	if days, ok := numeric(daysRemaining); ok {
		switch {
		case days <= t.CriticalDays:
			return LevelCritical
		case days <= t.WarningDays:
			return LevelWarning
		default:
			return LevelNormal
		}
	}

	if level, ok := numeric(currentLevel); ok {
		switch {
		case level <= t.CriticalLevel:
			return LevelCritical
		case level <= t.WarningLevel:
			return LevelWarning
		default:
			return LevelNormal
		}
	}

	return LevelUnknown
}

// ConfidenceFor grades the signal behind a classification: a usable trend rate
// and a live device give high, one of the two medium, neither low.
func ConfidenceFor(trendRate *float64, deviceOnline bool) Confidence {
	_, hasTrend := numeric(trendRate)

	switch {
	case hasTrend && deviceOnline:
		return ConfidenceHigh
	case hasTrend || deviceOnline:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// PredictedDate converts a days-remaining estimate into a calendar date.
// Fractional days are preserved and a negative estimate lands in the past,
// which is intentional: it reads as "should already have been handled".
func PredictedDate(daysRemaining *float64, from time.Time) *time.Time {
	days, ok := numeric(daysRemaining)
	if !ok {
		return nil
	}

	predicted := from.Add(time.Duration(days * 24 * float64(time.Hour)))
	return &predicted
}

// numeric unwraps a nullable float, rejecting NaN and Inf so malformed
// upstream data behaves like a missing value.
func numeric(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
