package pkg

const (
	INF_WEIGHT float64 = 1e15

	// expansion budget of a single path search
	DEFAULT_MAX_SEARCH_ITERATIONS = 50000

	// initial radius (km) of the r-tree nearest node query, doubled until a node is found
	DEFAULT_NEAREST_SEARCH_RADIUS_KM = 0.05

	// half the earth circumference, past this the r-tree query falls back to a linear scan
	MAX_NEAREST_SEARCH_RADIUS_KM = 20037.5

	// upper bound of queries in one batch request
	MAX_BATCH_QUERIES = 100
)

// way tag keys: road marker and street name
const (
	HIGHWAY_TAG = "highway"
	NAME_TAG    = "name"
)

const (
	SPATIAL_INDEX_RTREE  = "rtree"
	SPATIAL_INDEX_LINEAR = "linear"
)
