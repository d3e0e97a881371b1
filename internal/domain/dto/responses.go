package dto

import (
	"time"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/pkg/urgency"
)

type TankListResponse struct {
	Tanks   []*domain.ClassifiedTank `json:"tanks"`
	Summary urgency.Summary          `json:"summary"`
}

type DeviceListResponse struct {
	Devices []*domain.ClassifiedDevice `json:"devices"`
	Summary urgency.Summary            `json:"summary"`
}

// SnapshotResponse feeds the dashboard summary cards and the websocket stream.
type SnapshotResponse struct {
	Tanks       urgency.Summary `json:"tanks"`
	Devices     urgency.Summary `json:"devices"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type DepotRankingResponse struct {
	Depots []*domain.DepotPerformance `json:"depots"`
}

type DiscoverPOIResponse struct {
	JobID    string               `json:"job_id"`
	Clusters []*domain.POICluster `json:"clusters"`
}
