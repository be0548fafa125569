package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/navigatorx-astar/pkg"
	"github.com/lintang-b-s/navigatorx-astar/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
	"go.uber.org/zap"
)

type Query struct {
	SrcLat, SrcLon float64
	DstLat, DstLon float64
}

type QueryResult struct {
	Route *engine.Route
	Err   error
}

type RoutingService struct {
	log        *zap.Logger
	engine     RoutingEngine
	numWorkers int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, numWorkers int) *RoutingService {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &RoutingService{
		log:        log,
		engine:     engine,
		numWorkers: numWorkers,
	}
}

// ShortestPath. route between two coordinates, errors carry a util error code
func (rs *RoutingService) ShortestPath(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) (*engine.Route, error) {
	route, err := rs.engine.ShortestPath(ctx, srcLat, srcLon, dstLat, dstLon)
	if err != nil {
		rs.log.Debug("shortest path query failed", zap.Error(err),
			zap.Float64("srcLat", srcLat), zap.Float64("srcLon", srcLon),
			zap.Float64("dstLat", dstLat), zap.Float64("dstLon", dstLon))
		return nil, wrapRoutingError(err)
	}
	return route, nil
}

// ShortestPaths. independent queries answered in parallel, results keep the order of queries
func (rs *RoutingService) ShortestPaths(ctx context.Context, queries []Query) ([]QueryResult, error) {
	if len(queries) == 0 || len(queries) > pkg.MAX_BATCH_QUERIES {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"number of queries must be between 1 and %d", pkg.MAX_BATCH_QUERIES)
	}

	results := concurrent.ParallelMap(queries, rs.numWorkers, func(q Query) QueryResult {
		route, err := rs.ShortestPath(ctx, q.SrcLat, q.SrcLon, q.DstLat, q.DstLon)
		return QueryResult{Route: route, Err: err}
	})
	return results, nil
}

func (rs *RoutingService) Status() engine.Status {
	return rs.engine.Status()
}

func wrapRoutingError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return util.WrapErrorf(err, util.ErrRequestCanceled, "request canceled or timed out")
	case errors.Is(err, geo.ErrInvalidCoordinate):
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", err.Error())
	case errors.Is(err, spatialindex.ErrNoRoutableNode):
		return util.WrapErrorf(err, util.ErrNotFound, "no routable node near the given point")
	case errors.Is(err, routing.ErrSearchBudgetExhausted):
		return util.WrapErrorf(err, util.ErrNotFound, "no path found within the search budget")
	case errors.Is(err, routing.ErrPathNotFound), errors.Is(err, routing.ErrUnknownNode):
		return util.WrapErrorf(err, util.ErrNotFound, "no path found between the given points")
	default:
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}
