package urgency

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ranked is what an entity must expose to take part in urgency ordering.
type Ranked interface {
	UrgencyLevel() Level
	DaysLeft() *float64
	DisplayName() string
}

// Rank orders entities most urgent first: severity, then days remaining
// ascending with missing values last, then name. The sort is stable and the
// input slice is left untouched.
func Rank[T Ranked](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	// the collator keeps internal buffers, so it must not be shared between
	// goroutines
	coll := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if sa, sb := a.UrgencyLevel().Severity(), b.UrgencyLevel().Severity(); sa != sb {
			return sa < sb
		}

		if da, db := daysOrInf(a.DaysLeft()), daysOrInf(b.DaysLeft()); da != db {
			return da < db
		}

		return coll.CompareString(a.DisplayName(), b.DisplayName()) < 0
	})

	return out
}

// Summary holds per-bucket counts for dashboard cards. The bucket counts
// always sum to Total because Classify leaves nothing unclassified.
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Normal   int `json:"normal"`
	Unknown  int `json:"unknown"`
}

// Summarize counts entities per bucket in a single pass.
func Summarize[T Ranked](items []T) Summary {
	summary := Summary{Total: len(items)}
	for _, item := range items {
		switch item.UrgencyLevel() {
		case LevelCritical:
			summary.Critical++
		case LevelWarning:
			summary.Warning++
		case LevelNormal:
			summary.Normal++
		default:
			summary.Unknown++
		}
	}
	return summary
}

func daysOrInf(v *float64) float64 {
	if days, ok := numeric(v); ok {
		return days
	}
	return math.Inf(1)
}
