package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/lintang-b-s/navigatorx-astar/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-astar/pkg/spatialindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// chain n0..n4 along the equator, a separate road r0-r1 and an unrouted node near n0
func testRecords() ([]osmparser.NodeRecord, []osmparser.WayRecord) {
	nodes := []osmparser.NodeRecord{
		osmparser.NewNodeRecord("n0", 0, 0.000),
		osmparser.NewNodeRecord("n1", 0, 0.001),
		osmparser.NewNodeRecord("n2", 0, 0.002),
		osmparser.NewNodeRecord("n3", 0, 0.003),
		osmparser.NewNodeRecord("n4", 0, 0.004),
		osmparser.NewNodeRecord("r0", 1, 1.000),
		osmparser.NewNodeRecord("r1", 1, 1.001),
		osmparser.NewNodeRecord("lonely", 0, -0.0001),
	}
	ways := []osmparser.WayRecord{
		osmparser.NewWayRecord(map[string]string{"highway": "residential"}, []string{"n0", "n1", "n2", "n3", "n4"}),
		osmparser.NewWayRecord(map[string]string{"highway": "service"}, []string{"r0", "r1"}),
	}
	return nodes, ways
}

func newTestEngine(t *testing.T, cfg Config, opts ...Option) *Engine {
	t.Helper()
	nodes, ways := testRecords()
	graph := osmparser.BuildGraph(nodes, ways, zap.NewNop())
	e, err := NewEngineFromGraph(graph, cfg, zap.NewNop(), opts...)
	require.NoError(t, err)
	return e
}

type recordedSearch struct {
	outcome    string
	expansions int
}

type fakeObserver struct {
	mu       sync.Mutex
	searches []recordedSearch
}

func (f *fakeObserver) ObserveSearch(outcome string, expansions int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, recordedSearch{outcome, expansions})
}

func TestShortestPath(t *testing.T) {
	for _, index := range []string{"rtree", "linear"} {
		t.Run(index, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SpatialIndex = index
			e := newTestEngine(t, cfg)

			route, err := e.ShortestPath(context.Background(), 0.00001, -0.00002, 0.00001, 0.00401)
			require.NoError(t, err)

			assert.Equal(t, "n0", route.StartNode)
			assert.Equal(t, "n4", route.EndNode)
			assert.Equal(t, []string{"n0", "n1", "n2", "n3", "n4"}, route.NodeIDs)
			require.Len(t, route.Path, 5)
			assert.Equal(t, geo.NewCoordinate(0, 0.002), route.Path[2])
			assert.InEpsilon(t, 4*0.111195, route.DistanceKm, 0.01)
			assert.InDelta(t, route.Cost, route.DistanceKm, 1e-9)
			assert.Equal(t, 5, route.Expansions)

			decoded, err := geo.CoordsFromPolyline(route.Polyline)
			require.NoError(t, err)
			assert.Len(t, decoded, 5)

			require.Len(t, route.Directions, 2)
			assert.Equal(t, "START", route.Directions[0].TurnType)
			assert.Equal(t, "Head East", route.Directions[0].Instruction)
			assert.InDelta(t, route.DistanceKm, route.Directions[0].DistanceKm, 1e-5)
			assert.Equal(t, "FINISH", route.Directions[1].TurnType)
		})
	}
}

func TestShortestPathErrors(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	_, err := e.ShortestPath(context.Background(), 0, 0, 1, 1.0005)
	assert.ErrorIs(t, err, routing.ErrPathNotFound)

	_, err = e.ShortestPath(context.Background(), 91, 0, 0, 0)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	_, err = e.ShortestPath(context.Background(), 0, 0, 0, 181)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.ShortestPath(ctx, 0, 0, 0, 0.004)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPathBudget(t *testing.T) {
	observer := &fakeObserver{}
	cfg := DefaultConfig()
	cfg.MaxSearchIterations = 3
	e := newTestEngine(t, cfg, WithSearchObserver(observer))

	_, err := e.ShortestPath(context.Background(), 0, 0, 0, 0.004)
	assert.ErrorIs(t, err, routing.ErrSearchBudgetExhausted)

	route, err := e.ShortestPath(context.Background(), 0, 0, 0, 0.002)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, route.NodeIDs)

	require.Len(t, observer.searches, 2)
	assert.Equal(t, recordedSearch{SEARCH_BUDGET_EXHAUSTED, 3}, observer.searches[0])
	assert.Equal(t, recordedSearch{SEARCH_FOUND, 3}, observer.searches[1])
}

func TestFindNearest(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	// lonely is closest but unrouted
	id, err := e.FindNearest(0, -0.0001)
	require.NoError(t, err)
	assert.Equal(t, "n0", id)

	id, err = e.FindNearest(0.9, 1.0009)
	require.NoError(t, err)
	assert.Equal(t, "r1", id)

	_, err = e.FindNearest(0, 200)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestFindNearestEmptyGraph(t *testing.T) {
	graph := osmparser.BuildGraph(nil, nil, zap.NewNop())
	e, err := NewEngineFromGraph(graph, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	_, err = e.FindNearest(0, 0)
	assert.ErrorIs(t, err, spatialindex.ErrNoRoutableNode)
}

func TestFindPathAndAssemble(t *testing.T) {
	observer := &fakeObserver{}
	e := newTestEngine(t, DefaultConfig(), WithSearchObserver(observer))

	ids, err := e.FindPath("n1", "n3")
	require.NoError(t, err)
	assert.Equal(t, []string{"n1", "n2", "n3"}, ids)

	coords, dist, err := e.AssemblePath(ids)
	require.NoError(t, err)
	assert.Len(t, coords, 3)
	assert.InEpsilon(t, 2*0.111195, dist, 0.01)

	ids, err = e.FindPath("n2", "n2")
	require.NoError(t, err)
	assert.Equal(t, []string{"n2"}, ids)

	_, err = e.FindPath("nope", "n3")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)

	_, err = e.FindPath("lonely", "n3")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)

	_, err = e.FindPath("n0", "r1")
	assert.ErrorIs(t, err, routing.ErrPathNotFound)

	_, _, err = e.AssemblePath([]string{"n0", "nope"})
	assert.ErrorIs(t, err, routing.ErrUnknownNode)

	require.Len(t, observer.searches, 4)
	assert.Equal(t, SEARCH_UNKNOWN_NODE, observer.searches[2].outcome)
	assert.Equal(t, SEARCH_NOT_FOUND, observer.searches[3].outcome)
}

func TestStatus(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	assert.Equal(t, Status{Nodes: 8, RoutableNodes: 7, Edges: 10}, e.Status())
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "default", mutate: func(c *Config) {}},
		{name: "linear index", mutate: func(c *Config) { c.SpatialIndex = "linear" }},
		{name: "zero budget", mutate: func(c *Config) { c.MaxSearchIterations = 0 }, wantErr: true},
		{name: "unknown index", mutate: func(c *Config) { c.SpatialIndex = "kdtree" }, wantErr: true},
		{name: "zero radius", mutate: func(c *Config) { c.NearestSearchRadiusKm = 0 }, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewEngineFromFile(t *testing.T) {
	osmXML := `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="-7.5600" lon="110.8000"/>
  <node id="2" lat="-7.5600" lon="110.8010"/>
  <node id="3" lat="-7.5610" lon="110.8010"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/>
    <tag k="highway" v="tertiary"/>
  </way>
</osm>`
	mapFile := filepath.Join(t.TempDir(), "solo.osm")
	require.NoError(t, os.WriteFile(mapFile, []byte(osmXML), 0o644))

	e, err := NewEngine(context.Background(), mapFile, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Status{Nodes: 3, RoutableNodes: 3, Edges: 4}, e.Status())

	route, err := e.ShortestPath(context.Background(), -7.56, 110.8, -7.561, 110.801)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, route.NodeIDs)

	_, err = NewEngine(context.Background(), filepath.Join(t.TempDir(), "missing.osm"), DefaultConfig(), zap.NewNop())
	assert.Error(t, err)

	badCfg := DefaultConfig()
	badCfg.MaxSearchIterations = -1
	_, err = NewEngine(context.Background(), mapFile, badCfg, zap.NewNop())
	assert.Error(t, err)
}
