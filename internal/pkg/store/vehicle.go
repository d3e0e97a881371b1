package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/malovets/fleetops/internal/domain"
	"github.com/malovets/fleetops/internal/pkg/logger"
)

type ListVehicleRecordsOpts struct {
	DepotName *string
}

func (s *store) ListVehicleRecords(ctx context.Context, opts ListVehicleRecordsOpts) ([]domain.VehicleRecord, error) {
	query := builder().Select(
		"v.id",
		"v.depot_name",
		"v.safety_score",
		"v.fuel_efficiency",
		"v.utilization",
		"coalesce(sum(case when e.kind = 'safety' then 1 else 0 end), 0) as safety_events",
		"coalesce(sum(case when e.kind = 'fatigue' then 1 else 0 end), 0) as fatigue_events").
		From(fmt.Sprintf("%s v", tableVehicles)).
		LeftJoin(fmt.Sprintf("%s e on e.vehicle_id = v.id", tableSafetyEvents)).
		GroupBy("v.id", "v.depot_name", "v.safety_score", "v.fuel_efficiency", "v.utilization").
		OrderBy("v.depot_name, v.id")

	if opts.DepotName != nil {
		query = query.Where(sq.Eq{"v.depot_name": *opts.DepotName})
	}

	var selected []domain.VehicleRecord

	err := s.pool.Selectx(ctx, &selected, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
