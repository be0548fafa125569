package osmparser

import (
	"github.com/lintang-b-s/navigatorx-astar/pkg"
	"github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"go.uber.org/zap"
)

type graphBuilderConfig struct {
	roadKeys []string
}

type GraphBuilderOption func(*graphBuilderConfig)

// WithRoadKeys. tag keys that mark a way as a road. defaults to "highway".
func WithRoadKeys(keys ...string) GraphBuilderOption {
	return func(c *graphBuilderConfig) {
		if len(keys) > 0 {
			c.roadKeys = keys
		}
	}
}

type edgeKey struct {
	from datastructure.Index
	to   datastructure.Index
}

// BuildGraph. build the road graph from node and way records.
// every node with a valid coordinate is registered, only ways carrying a road key contribute edges.
// segments that reference an unknown node are skipped. the first way to contribute a segment names it.
func BuildGraph(nodes []NodeRecord, ways []WayRecord, logger *zap.Logger,
	opts ...GraphBuilderOption) *datastructure.Graph {
	cfg := &graphBuilderConfig{
		roadKeys: []string{pkg.HIGHWAY_TAG},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	vertices := make([]datastructure.Vertex, 0, len(nodes))
	nodeIDs := make([]string, 0, len(nodes))
	idMap := make(map[string]datastructure.Index, len(nodes))

	invalidNodes := 0
	for _, n := range nodes {
		if geo.ValidateCoordinate(n.Lat, n.Lon) != nil {
			invalidNodes++
			continue
		}
		if idx, ok := idMap[n.ID]; ok {
			// duplicate id, keep the index and take the latest coordinates
			vertices[idx] = datastructure.NewVertex(n.Lat, n.Lon, idx)
			continue
		}
		idx := datastructure.Index(len(vertices))
		idMap[n.ID] = idx
		nodeIDs = append(nodeIDs, n.ID)
		vertices = append(vertices, datastructure.NewVertex(n.Lat, n.Lon, idx))
	}

	outEdges := make([][]datastructure.OutEdge, len(vertices))
	edgeSet := make(map[edgeKey]struct{})
	streetNames := []string{""}
	streetNameIDs := map[string]datastructure.Index{"": 0}

	acceptedWays, skippedSegments, selfLoops := 0, 0, 0
	for _, way := range ways {
		if !cfg.acceptWay(way) {
			continue
		}
		acceptedWays++

		name := way.Tags[pkg.NAME_TAG]
		nameID, ok := streetNameIDs[name]
		if !ok {
			nameID = datastructure.Index(len(streetNames))
			streetNameIDs[name] = nameID
			streetNames = append(streetNames, name)
		}

		for i := 0; i+1 < len(way.NodeRefs); i++ {
			u, okU := idMap[way.NodeRefs[i]]
			v, okV := idMap[way.NodeRefs[i+1]]
			if !okU || !okV {
				skippedSegments++
				continue
			}
			if u == v {
				selfLoops++
				continue
			}
			if _, ok := edgeSet[edgeKey{u, v}]; ok {
				continue
			}

			uLat, uLon := vertices[u].GetLat(), vertices[u].GetLon()
			vLat, vLon := vertices[v].GetLat(), vertices[v].GetLon()
			weight := geo.CalculateHaversineDistance(uLat, uLon, vLat, vLon)

			outEdges[u] = append(outEdges[u], datastructure.NewNamedOutEdge(v, weight, nameID))
			outEdges[v] = append(outEdges[v], datastructure.NewNamedOutEdge(u, weight, nameID))
			edgeSet[edgeKey{u, v}] = struct{}{}
			edgeSet[edgeKey{v, u}] = struct{}{}
		}
	}

	graph := datastructure.NewGraph(vertices, nodeIDs, outEdges, datastructure.WithStreetNames(streetNames))

	if invalidNodes > 0 {
		logger.Debug("dropped node records with invalid coordinates", zap.Int("count", invalidNodes))
	}
	if skippedSegments > 0 || selfLoops > 0 {
		logger.Debug("skipped way segments",
			zap.Int("unknown_node_ref", skippedSegments), zap.Int("self_loop", selfLoops))
	}
	logger.Sugar().Infof("accepted road ways: %d", acceptedWays)
	logger.Sugar().Infof("number of vertices: %d", graph.NumberOfVertices())
	logger.Sugar().Infof("number of routable vertices: %d", graph.NumberOfRoutableVertices())
	logger.Sugar().Infof("number of edges: %d", graph.NumberOfEdges())

	return graph
}

func (c *graphBuilderConfig) acceptWay(way WayRecord) bool {
	if len(way.NodeRefs) < 2 {
		return false
	}
	for _, key := range c.roadKeys {
		if _, ok := way.Tags[key]; ok {
			return true
		}
	}
	return false
}
