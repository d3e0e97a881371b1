package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/pkg/logger"
)

type DiscoverPOIOpts struct {
	RadiusM      float64
	MinVisits    int
	LookbackDays int
}

// DiscoverPOIClusters invokes the DBSCAN-style clustering procedure that lives
// inside the database. This side only binds the parameters and scans the
// resulting rows.
func (s *store) DiscoverPOIClusters(ctx context.Context, opts DiscoverPOIOpts) ([]*domain.POICluster, error) {
	query := dollar{sq.Expr(
		`select cluster_id, label, centroid_lat, centroid_lng, visit_count, dwell_minutes
from discover_poi_clusters(?, ?, ?)
order by visit_count desc`,
		opts.RadiusM, opts.MinVisits, opts.LookbackDays,
	)}

	var selected []*domain.POICluster

	err := s.pool.Selectx(ctx, &selected, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
