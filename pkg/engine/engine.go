package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lintang-b-s/navigatorx-astar/pkg"
	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/guidance"
	"github.com/lintang-b-s/navigatorx-astar/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-astar/pkg/spatialindex"
	"go.uber.org/zap"
)

type NearestNodeIndex interface {
	Nearest(lat, lon float64) (da.Index, error)
}

// SearchObserver. receives the outcome of every path search
type SearchObserver interface {
	ObserveSearch(outcome string, expansions int, elapsed time.Duration)
}

const (
	SEARCH_FOUND            = "found"
	SEARCH_NOT_FOUND        = "not_found"
	SEARCH_BUDGET_EXHAUSTED = "budget_exhausted"
	SEARCH_UNKNOWN_NODE     = "unknown_node"
)

type Engine struct {
	graph    *da.Graph
	index    NearestNodeIndex
	astar    *routing.AStar
	log      *zap.Logger
	observer SearchObserver

	parserOpts []osmparser.ParserOption
}

type Option func(*Engine)

func WithSearchObserver(o SearchObserver) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithParserOptions. options of the openstreetmap decoder used by NewEngine
func WithParserOptions(opts ...osmparser.ParserOption) Option {
	return func(e *Engine) {
		e.parserOpts = append(e.parserOpts, opts...)
	}
}

// Route. result of a coordinate to coordinate query
type Route struct {
	Path       []geo.Coordinate
	NodeIDs    []string
	DistanceKm float64 // recomputed from the path coordinates
	Cost       float64 // search cost of the goal
	Polyline   string
	StartNode  string
	EndNode    string
	Expansions int
	Directions []guidance.DrivingDirection
}

type Status struct {
	Nodes         int
	RoutableNodes int
	Edges         int
}

// NewEngine. decode mapFile, build the road graph and its nearest node index
func NewEngine(ctx context.Context, mapFile string, cfg Config, logger *zap.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := newEngine(logger, opts...)

	logger.Info("Reading openstreetmap file", zap.String("mapFile", mapFile))
	parser := osmparser.NewOSMParser(e.parserOpts...)
	nodes, ways, err := parser.Parse(ctx, mapFile, logger)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", mapFile, err)
	}

	logger.Info("Building road graph...")
	graph := osmparser.BuildGraph(nodes, ways, logger)

	e.build(graph, cfg)
	return e, nil
}

func NewEngineFromGraph(graph *da.Graph, cfg Config, logger *zap.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := newEngine(logger, opts...)
	e.build(graph, cfg)
	return e, nil
}

func newEngine(logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{log: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) build(graph *da.Graph, cfg Config) {
	var index NearestNodeIndex
	switch cfg.SpatialIndex {
	case pkg.SPATIAL_INDEX_LINEAR:
		index = spatialindex.NewLinearScan(graph)
	default:
		rt := spatialindex.NewRtree(cfg.NearestSearchRadiusKm)
		rt.Build(graph, e.log)
		index = rt
	}

	e.graph = graph
	e.index = index
	e.astar = routing.NewAStar(graph, cfg.MaxSearchIterations)

	e.log.Info("A* routing engine ready",
		zap.Int("maxSearchIterations", cfg.MaxSearchIterations), zap.String("spatialIndex", cfg.SpatialIndex))
}

func (e *Engine) GetGraph() *da.Graph {
	return e.graph
}

// FindNearest. id of the routable node closest to (lat, lon)
func (e *Engine) FindNearest(lat, lon float64) (string, error) {
	if err := geo.ValidateCoordinate(lat, lon); err != nil {
		return "", err
	}
	u, err := e.index.Nearest(lat, lon)
	if err != nil {
		return "", err
	}
	return e.graph.GetID(u), nil
}

// FindPath. ordered node ids of a shortest path from startID to goalID
func (e *Engine) FindPath(startID, goalID string) ([]string, error) {
	res, err := e.findPath(startID, goalID)
	if err != nil {
		return nil, err
	}
	return e.toNodeIDs(res.Path), nil
}

func (e *Engine) findPath(startID, goalID string) (routing.SearchResult, error) {
	s, ok := e.graph.GetIndex(startID)
	if !ok {
		return routing.SearchResult{}, fmt.Errorf("%w: start node %s", routing.ErrUnknownNode, startID)
	}
	t, ok := e.graph.GetIndex(goalID)
	if !ok {
		return routing.SearchResult{}, fmt.Errorf("%w: goal node %s", routing.ErrUnknownNode, goalID)
	}

	start := time.Now()
	res, err := e.astar.ShortestPath(s, t)
	e.observe(res, err, time.Since(start))
	return res, err
}

// AssemblePath. coordinates of the node ids and the path length in km
func (e *Engine) AssemblePath(ids []string) ([]geo.Coordinate, float64, error) {
	path := make([]da.Index, 0, len(ids))
	for _, id := range ids {
		u, ok := e.graph.GetIndex(id)
		if !ok {
			return nil, 0, fmt.Errorf("%w: node %s", routing.ErrUnknownNode, id)
		}
		path = append(path, u)
	}
	return routing.AssemblePath(e.graph, path)
}

// ShortestPath. snap both coordinates to their nearest routable node, search, and assemble the route.
// ctx is checked between phases only, the search itself is bounded by the expansion budget.
func (e *Engine) ShortestPath(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) (*Route, error) {
	startID, err := e.FindNearest(srcLat, srcLon)
	if err != nil {
		return nil, err
	}
	goalID, err := e.FindNearest(dstLat, dstLon)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := e.findPath(startID, goalID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	coords, dist, err := routing.AssemblePath(e.graph, res.Path)
	if err != nil {
		return nil, err
	}

	return &Route{
		Path:       coords,
		NodeIDs:    e.toNodeIDs(res.Path),
		DistanceKm: dist,
		Cost:       res.Cost,
		Polyline:   geo.PolylineFromCoords(coords),
		StartNode:  startID,
		EndNode:    goalID,
		Expansions: res.Expansions,
		Directions: guidance.NewDirectionBuilder(e.graph).GetDrivingDirections(res.Path),
	}, nil
}

func (e *Engine) Status() Status {
	return Status{
		Nodes:         e.graph.NumberOfVertices(),
		RoutableNodes: e.graph.NumberOfRoutableVertices(),
		Edges:         e.graph.NumberOfEdges(),
	}
}

func (e *Engine) toNodeIDs(path []da.Index) []string {
	ids := make([]string, len(path))
	for i, u := range path {
		ids[i] = e.graph.GetID(u)
	}
	return ids
}

func (e *Engine) observe(res routing.SearchResult, err error, elapsed time.Duration) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveSearch(searchOutcome(err), res.Expansions, elapsed)
}

func searchOutcome(err error) string {
	switch {
	case err == nil:
		return SEARCH_FOUND
	case errors.Is(err, routing.ErrUnknownNode):
		return SEARCH_UNKNOWN_NODE
	case errors.Is(err, routing.ErrSearchBudgetExhausted):
		return SEARCH_BUDGET_EXHAUSTED
	default:
		return SEARCH_NOT_FOUND
	}
}
