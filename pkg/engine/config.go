package engine

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/navigatorx-astar/pkg"
	"github.com/spf13/viper"
)

type Config struct {
	MaxSearchIterations   int
	SpatialIndex          string // rtree | linear
	NearestSearchRadiusKm float64
}

func DefaultConfig() Config {
	return Config{
		MaxSearchIterations:   pkg.DEFAULT_MAX_SEARCH_ITERATIONS,
		SpatialIndex:          pkg.SPATIAL_INDEX_RTREE,
		NearestSearchRadiusKm: pkg.DEFAULT_NEAREST_SEARCH_RADIUS_KM,
	}
}

// NewConfigFromViper. engine config from MAX_SEARCH_ITERATIONS, SPATIAL_INDEX and NEAREST_SEARCH_RADIUS_KM
func NewConfigFromViper() Config {
	viper.SetDefault("MAX_SEARCH_ITERATIONS", pkg.DEFAULT_MAX_SEARCH_ITERATIONS)
	viper.SetDefault("SPATIAL_INDEX", pkg.SPATIAL_INDEX_RTREE)
	viper.SetDefault("NEAREST_SEARCH_RADIUS_KM", pkg.DEFAULT_NEAREST_SEARCH_RADIUS_KM)

	return Config{
		MaxSearchIterations:   viper.GetInt("MAX_SEARCH_ITERATIONS"),
		SpatialIndex:          strings.ToLower(viper.GetString("SPATIAL_INDEX")),
		NearestSearchRadiusKm: viper.GetFloat64("NEAREST_SEARCH_RADIUS_KM"),
	}
}

func (c Config) Validate() error {
	if c.MaxSearchIterations <= 0 {
		return fmt.Errorf("max search iterations must be positive, got %d", c.MaxSearchIterations)
	}
	switch c.SpatialIndex {
	case pkg.SPATIAL_INDEX_RTREE, pkg.SPATIAL_INDEX_LINEAR:
	default:
		return fmt.Errorf("unknown spatial index %q", c.SpatialIndex)
	}
	if c.NearestSearchRadiusKm <= 0 {
		return fmt.Errorf("nearest search radius must be positive, got %f", c.NearestSearchRadiusKm)
	}
	return nil
}
