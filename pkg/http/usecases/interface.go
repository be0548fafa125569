package usecases

import (
	"context"

	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
)

type RoutingEngine interface {
	ShortestPath(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) (*engine.Route, error)
	Status() engine.Status
}
