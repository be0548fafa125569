package controllers

import (
	"context"

	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
	"github.com/lintang-b-s/navigatorx-astar/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) (*engine.Route, error)
	ShortestPaths(ctx context.Context, queries []usecases.Query) ([]usecases.QueryResult, error)
	Status() engine.Status
}
