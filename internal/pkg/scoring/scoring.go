// Package scoring ranks depots by a weighted composite of safety, efficiency,
// utilization and incident rate. Pure and deterministic, recomputed on every
// data refresh.
package scoring

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/malovets/fleetops/internal/domain"
)

// Weights is the maximum contribution of each category to the composite. The
// defaults sum to 100, which keeps the composite on a 0-100 scale.
type Weights struct {
	Safety      float64
	Efficiency  float64
	Utilization float64
	Events      float64
}

func DefaultWeights() Weights {
	return Weights{
		Safety:      40,
		Efficiency:  30,
		Utilization: 20,
		Events:      10,
	}
}

const (
	// safety scores arrive on a 0-10 scale
	safetyScale = 10
	// km/L at which a depot earns full efficiency credit; anything above
	// earns no extra
	efficiencyTarget = 15
	utilizationScale = 100
	// composite points lost per incident per vehicle
	eventPenalty = 2
)

// ScoreDepots groups vehicle records by depot, computes the weighted composite
// per depot and returns the depots ranked best first. Ranks are 1-based in
// sorted order; ties keep the order depots first appeared in the input. A
// depot only exists here if it has at least one vehicle record, so there is no
// zero-vehicle division to guard.
func (w Weights) ScoreDepots(records []domain.VehicleRecord) []*domain.DepotPerformance {
	order := make([]string, 0, 8)
	groups := make(map[string][]domain.VehicleRecord, 8)
	for _, record := range records {
		if _, ok := groups[record.DepotName]; !ok {
			order = append(order, record.DepotName)
		}
		groups[record.DepotName] = append(groups[record.DepotName], record)
	}

	ranking := make([]*domain.DepotPerformance, 0, len(order))
	for _, depotName := range order {
		ranking = append(ranking, w.scoreDepot(depotName, groups[depotName]))
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].WeightedScore > ranking[j].WeightedScore
	})
	for i, perf := range ranking {
		perf.Rank = i + 1
	}

	return ranking
}

func (w Weights) scoreDepot(depotName string, records []domain.VehicleRecord) *domain.DepotPerformance {
	perf := &domain.DepotPerformance{
		DepotName:    depotName,
		VehicleCount: len(records),
	}

	var events int
	for _, record := range records {
		perf.AvgSafety += record.SafetyScore
		perf.AvgEfficiency += record.FuelEfficiency
		perf.AvgUtilization += record.Utilization
		events += record.SafetyEvents + record.FatigueEvents
	}

	count := float64(len(records))
	perf.AvgSafety = round2(perf.AvgSafety / count)
	perf.AvgEfficiency = round2(perf.AvgEfficiency / count)
	perf.AvgUtilization = round2(perf.AvgUtilization / count)
	perf.EventsPerVehicle = round2(float64(events) / count)

	perf.SafetyScore = round2(math.Min(perf.AvgSafety/safetyScale*w.Safety, w.Safety))
	perf.EfficiencyScore = round2(math.Min(perf.AvgEfficiency/efficiencyTarget*w.Efficiency, w.Efficiency))
	perf.UtilizationScore = round2(math.Min(perf.AvgUtilization/utilizationScale*w.Utilization, w.Utilization))
	perf.EventsScore = round2(math.Max(w.Events-perf.EventsPerVehicle*eventPenalty, 0))

	perf.WeightedScore = round2(perf.SafetyScore + perf.EfficiencyScore + perf.UtilizationScore + perf.EventsScore)

	return perf
}

// round2 pins scores to two decimals so repeated runs over the same snapshot
// serialize byte-identically.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
