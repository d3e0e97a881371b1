package poi

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/domain/dto"
	"github.com/malovets/fleetops/internal/pkg/logger"
	"github.com/malovets/fleetops/internal/pkg/store"
)

// Service triggers the in-database POI discovery procedure and hands its
// clusters back to the dashboard.
type Service struct {
	store store.Store
}

func NewPOIService(store store.Store) *Service {
	return &Service{store: store}
}

// Discover runs the clustering procedure. The procedure briefly takes a table
// lock inside the database, so the call is retried on a short constant
// backoff before giving up.
func (s *Service) Discover(ctx context.Context, req *dto.DiscoverPOIRequest) (*dto.DiscoverPOIResponse, error) {
	opts := store.DiscoverPOIOpts{
		RadiusM:      req.RadiusM,
		MinVisits:    req.MinVisits,
		LookbackDays: req.LookbackDays,
	}

	var clusters []*domain.POICluster
	err := backoff.Retry(
		func() error {
			var callErr error

			clusters, callErr = s.store.DiscoverPOIClusters(ctx, opts)
			if callErr != nil {
				return callErr
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	jobID := uuid.NewString()
	logger.Infof(ctx, "poi discovery finished, job_id-%s, clusters-%d", jobID, len(clusters))

	return &dto.DiscoverPOIResponse{JobID: jobID, Clusters: clusters}, nil
}
