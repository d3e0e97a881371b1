package depot

import (
	"context"
	"fmt"

	"github.com/malovets/fleetops/internal/domain/dto"
	"github.com/malovets/fleetops/internal/pkg/scoring"
	"github.com/malovets/fleetops/internal/pkg/store"
)

// Service produces the depot performance ranking from current vehicle records.
type Service struct {
	store   store.Store
	weights scoring.Weights
}

func NewDepotService(store store.Store, weights scoring.Weights) *Service {
	return &Service{store: store, weights: weights}
}

func (s *Service) Ranking(ctx context.Context) (*dto.DepotRankingResponse, error) {
	records, err := s.store.ListVehicleRecords(ctx, store.ListVehicleRecordsOpts{})
	if err != nil {
		return nil, fmt.Errorf("store.ListVehicleRecords: %w", err)
	}

	return &dto.DepotRankingResponse{Depots: s.weights.ScoreDepots(records)}, nil
}
