package dto

// DiscoverPOIRequest carries the parameters for the remote spatial-clustering
// procedure. Bounds mirror what the procedure itself accepts.
type DiscoverPOIRequest struct {
	RadiusM      float64 `json:"radius_m" validate:"required,gte=50,lte=5000"`
	MinVisits    int     `json:"min_visits" validate:"required,gte=1"`
	LookbackDays int     `json:"lookback_days" validate:"required,gte=1,lte=365"`
}
