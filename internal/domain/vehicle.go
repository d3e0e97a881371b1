package domain

// VehicleRecord is one vehicle's aggregates for the depot scoring pass.
// SafetyScore is on a 0-10 scale, FuelEfficiency in km/L, Utilization in
// percent; the event counts come pre-aggregated from safety_events.
type VehicleRecord struct {
	ID             string  `db:"id" json:"id"`
	DepotName      string  `db:"depot_name" json:"depot_name"`
	SafetyScore    float64 `db:"safety_score" json:"safety_score"`
	FuelEfficiency float64 `db:"fuel_efficiency" json:"fuel_efficiency"`
	Utilization    float64 `db:"utilization" json:"utilization"`
	SafetyEvents   int     `db:"safety_events" json:"safety_events"`
	FatigueEvents  int     `db:"fatigue_events" json:"fatigue_events"`
}

// DepotPerformance is the computed ranking row for one depot. Component
// scores are already weighted; WeightedScore is their sum, 0-100 by
// construction.
type DepotPerformance struct {
	DepotName        string  `json:"depot_name"`
	VehicleCount     int     `json:"vehicle_count"`
	AvgSafety        float64 `json:"avg_safety"`
	AvgEfficiency    float64 `json:"avg_efficiency"`
	AvgUtilization   float64 `json:"avg_utilization"`
	EventsPerVehicle float64 `json:"events_per_vehicle"`
	SafetyScore      float64 `json:"safety_score"`
	EfficiencyScore  float64 `json:"efficiency_score"`
	UtilizationScore float64 `json:"utilization_score"`
	EventsScore      float64 `json:"events_score"`
	WeightedScore    float64 `json:"weighted_score"`
	Rank             int     `json:"rank"`
}
