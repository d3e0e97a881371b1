package scoring

import (
	"reflect"
	"testing"

	"github.com/malovets/fleetops/internal/domain"
)

func vehicle(depot string, safety, efficiency, utilization float64, safetyEvents, fatigueEvents int) domain.VehicleRecord {
	return domain.VehicleRecord{
		DepotName:      depot,
		SafetyScore:    safety,
		FuelEfficiency: efficiency,
		Utilization:    utilization,
		SafetyEvents:   safetyEvents,
		FatigueEvents:  fatigueEvents,
	}
}

func TestScoreDepotComponents(t *testing.T) {
	records := []domain.VehicleRecord{
		vehicle("north", 8, 12, 50, 1, 1),
		vehicle("north", 6, 18, 50, 2, 0),
	}

	ranking := DefaultWeights().ScoreDepots(records)
	if len(ranking) != 1 {
		t.Fatalf("got %d depots, want 1", len(ranking))
	}

	perf := ranking[0]
	if perf.VehicleCount != 2 {
		t.Fatalf("vehicle count got %d want 2", perf.VehicleCount)
	}
	// avgSafety 7 -> 28, avgEfficiency 15 -> full 30, avgUtilization 50 -> 10,
	// 4 events over 2 vehicles -> epv 2 -> 10 - 4 = 6
	if perf.SafetyScore != 28 {
		t.Fatalf("safety score got %v want 28", perf.SafetyScore)
	}
	if perf.EfficiencyScore != 30 {
		t.Fatalf("efficiency score got %v want 30", perf.EfficiencyScore)
	}
	if perf.UtilizationScore != 10 {
		t.Fatalf("utilization score got %v want 10", perf.UtilizationScore)
	}
	if perf.EventsScore != 6 {
		t.Fatalf("events score got %v want 6", perf.EventsScore)
	}
	if perf.WeightedScore != 74 {
		t.Fatalf("weighted score got %v want 74", perf.WeightedScore)
	}
	if perf.Rank != 1 {
		t.Fatalf("rank got %d want 1", perf.Rank)
	}
}

func TestEfficiencyAboveTargetEarnsNoExtra(t *testing.T) {
	records := []domain.VehicleRecord{vehicle("east", 5, 40, 50, 0, 0)}

	perf := DefaultWeights().ScoreDepots(records)[0]
	if perf.EfficiencyScore != 30 {
		t.Fatalf("efficiency score got %v want clamp at 30", perf.EfficiencyScore)
	}
}

func TestEventsScoreFloorsAtZero(t *testing.T) {
	records := []domain.VehicleRecord{vehicle("west", 5, 10, 50, 8, 4)}

	perf := DefaultWeights().ScoreDepots(records)[0]
	if perf.EventsScore != 0 {
		t.Fatalf("events score got %v want 0", perf.EventsScore)
	}
}

func TestWeightedScoreBounds(t *testing.T) {
	weights := DefaultWeights()

	safeties := []float64{0, 3.5, 10}
	efficiencies := []float64{0, 7.2, 15, 60}
	utilizations := []float64{0, 55, 100}
	events := []int{0, 1, 5, 40}

	for _, safety := range safeties {
		for _, efficiency := range efficiencies {
			for _, utilization := range utilizations {
				for _, eventCount := range events {
					records := []domain.VehicleRecord{vehicle("d", safety, efficiency, utilization, eventCount, 0)}
					score := weights.ScoreDepots(records)[0].WeightedScore
					if score < 0 || score > 100 {
						t.Fatalf("score %v out of [0,100] for safety=%v eff=%v util=%v events=%d",
							score, safety, efficiency, utilization, eventCount)
					}
				}
			}
		}
	}
}

func TestZeroScoreInputsAreValid(t *testing.T) {
	records := []domain.VehicleRecord{vehicle("idle", 0, 0, 0, 0, 0)}

	perf := DefaultWeights().ScoreDepots(records)[0]
	// only the events component survives all-zero inputs
	if perf.WeightedScore != 10 {
		t.Fatalf("weighted score got %v want 10", perf.WeightedScore)
	}
}

func TestEmptyInputYieldsEmptyRanking(t *testing.T) {
	ranking := DefaultWeights().ScoreDepots(nil)
	if len(ranking) != 0 {
		t.Fatalf("got %d depots for empty input, want 0", len(ranking))
	}
}

func TestRankingOrderAndTies(t *testing.T) {
	records := []domain.VehicleRecord{
		// "low" scores worst, listed first to prove sorting is by score
		vehicle("low", 2, 5, 20, 6, 0),
		vehicle("tie-first", 8, 15, 80, 0, 0),
		vehicle("best", 10, 15, 100, 0, 0),
		// identical inputs to tie-first; must keep input order on the tie
		vehicle("tie-second", 8, 15, 80, 0, 0),
	}

	ranking := DefaultWeights().ScoreDepots(records)

	got := make([]string, len(ranking))
	for i, perf := range ranking {
		got[i] = perf.DepotName
	}
	want := []string{"best", "tie-first", "tie-second", "low"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranking order got %v want %v", got, want)
	}

	for i, perf := range ranking {
		if perf.Rank != i+1 {
			t.Fatalf("rank at position %d got %d", i, perf.Rank)
		}
	}
}

func TestScoreDepotsDeterministic(t *testing.T) {
	records := []domain.VehicleRecord{
		vehicle("north", 7.77, 13.33, 66.6, 1, 2),
		vehicle("south", 9.21, 11.11, 84.2, 0, 1),
		vehicle("north", 6.05, 14.99, 71.3, 3, 0),
	}

	first := DefaultWeights().ScoreDepots(records)
	second := DefaultWeights().ScoreDepots(records)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated scoring diverged:\n%+v\n%+v", first, second)
	}
}
