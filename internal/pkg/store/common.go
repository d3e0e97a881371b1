package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/malovets/fleetops/internal/pkg/constants"
)

const (
	tableTanks        = "tanks"
	tableDevices      = "devices"
	tableVehicles     = "vehicles"
	tableSafetyEvents = "safety_events"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// dollar rewrites ? placeholders to $n for raw expressions that bypass the
// statement builder.
type dollar struct {
	squirrel.Sqlizer
}

func (d dollar) ToSql() (string, []interface{}, error) {
	sql, args, err := d.Sqlizer.ToSql()
	if err != nil {
		return "", nil, err
	}

	sql, err = squirrel.Dollar.ReplacePlaceholders(sql)
	return sql, args, err
}
