package urgency

import (
	"math"
	"reflect"
	"testing"
)

type entity struct {
	name  string
	level Level
	days  *float64
}

func (e entity) UrgencyLevel() Level { return e.level }

func (e entity) DaysLeft() *float64 { return e.days }

func (e entity) DisplayName() string { return e.name }

func names(items []entity) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.name
	}
	return out
}

func TestRankOrder(t *testing.T) {
	input := []entity{
		{"depot charlie", LevelNormal, f(14)},
		{"Depot alpha", LevelWarning, f(5)},
		{"depot echo", LevelCritical, nil},
		{"depot bravo", LevelCritical, f(1)},
		{"depot delta", LevelUnknown, nil},
		{"depot Alpha annex", LevelWarning, f(5)},
	}

	got := names(Rank(input))
	want := []string{
		// critical first, missing days sort last inside the bucket
		"depot bravo",
		"depot echo",
		// warning tie on days falls through to case-insensitive name order
		"Depot alpha",
		"depot Alpha annex",
		"depot charlie",
		"depot delta",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank order got %v want %v", got, want)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []entity{
		{"b", LevelNormal, f(10)},
		{"a", LevelCritical, f(1)},
	}
	before := make([]entity, len(input))
	copy(before, input)

	Rank(input)

	if !reflect.DeepEqual(input, before) {
		t.Fatalf("Rank mutated its input: %v", input)
	}
}

func TestRankIdempotent(t *testing.T) {
	input := []entity{
		{"c", LevelWarning, f(6)},
		{"a", LevelCritical, f(-1)},
		{"b", LevelCritical, f(2)},
		{"d", LevelUnknown, nil},
		{"e", LevelNormal, f(math.NaN())},
	}

	once := Rank(input)
	twice := Rank(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Rank not idempotent: %v then %v", names(once), names(twice))
	}
}

func TestRankDeterministicAcrossInputOrder(t *testing.T) {
	forward := []entity{
		{"a", LevelCritical, f(1)},
		{"b", LevelCritical, f(2)},
		{"c", LevelWarning, f(5)},
		{"d", LevelNormal, nil},
	}
	backward := []entity{forward[3], forward[2], forward[1], forward[0]}

	if got, want := names(Rank(backward)), names(Rank(forward)); !reflect.DeepEqual(got, want) {
		t.Fatalf("order depends on input order: got %v want %v", got, want)
	}
}

func TestSummarizeConservation(t *testing.T) {
	input := []entity{
		{"a", LevelCritical, nil},
		{"b", LevelCritical, nil},
		{"c", LevelWarning, nil},
		{"d", LevelNormal, nil},
		{"e", LevelUnknown, nil},
		{"f", LevelUnknown, nil},
	}

	summary := Summarize(input)

	if summary.Total != len(input) {
		t.Fatalf("total got %d want %d", summary.Total, len(input))
	}
	if sum := summary.Critical + summary.Warning + summary.Normal + summary.Unknown; sum != summary.Total {
		t.Fatalf("buckets sum to %d, total is %d", sum, summary.Total)
	}
	if summary.Critical != 2 || summary.Warning != 1 || summary.Normal != 1 || summary.Unknown != 2 {
		t.Fatalf("unexpected bucket counts: %+v", summary)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize([]entity{})
	if summary != (Summary{}) {
		t.Fatalf("empty input got %+v want zero summary", summary)
	}
}
