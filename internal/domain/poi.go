package domain

// POICluster is one row emitted by the in-database discover_poi_clusters
// procedure. The clustering itself runs inside PostgreSQL; this side only
// passes parameters and renders results.
type POICluster struct {
	ClusterID    int     `db:"cluster_id" json:"cluster_id"`
	Label        string  `db:"label" json:"label"`
	CentroidLat  float64 `db:"centroid_lat" json:"centroid_lat"`
	CentroidLng  float64 `db:"centroid_lng" json:"centroid_lng"`
	VisitCount   int     `db:"visit_count" json:"visit_count"`
	DwellMinutes float64 `db:"dwell_minutes" json:"dwell_minutes"`
}
