package spatialindex

import (
	"math"

	"github.com/lintang-b-s/navigatorx-astar/pkg"
	"github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. nearest routable node using an r-tree over the routable vertices.
// gives the same answer as LinearScan, including ties.
type Rtree struct {
	tr            *rtree.RTreeG[datastructure.Index]
	graph         *datastructure.Graph
	initialRadius float64
	maxRadius     float64
}

// NewRtree. initialRadius is the first query radius in km, doubled until a node is found.
func NewRtree(initialRadius float64) *Rtree {
	if initialRadius <= 0 {
		initialRadius = pkg.DEFAULT_NEAREST_SEARCH_RADIUS_KM
	}
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr:            &tr,
		initialRadius: initialRadius,
		maxRadius:     pkg.MAX_NEAREST_SEARCH_RADIUS_KM,
	}
}

// Build. insert every routable vertex of graph as a point entry
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	rt.graph = graph
	graph.ForRoutableVertices(func(v *datastructure.Vertex) {
		p := [2]float64{v.GetLon(), v.GetLat()}
		rt.tr.Insert(p, p, v.GetID())
	})
	log.Info("R-tree spatial index built.", zap.Int("entries", rt.tr.Len()))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// Nearest. search boxes bounding a spherical cap of radius r around the query point.
// a best candidate within r is the true nearest node, since every closer node lies inside the cap.
// otherwise r doubles, and past maxRadius the query falls back to a linear scan.
func (rt *Rtree) Nearest(lat, lon float64) (datastructure.Index, error) {
	if rt.tr.Len() == 0 {
		return datastructure.INVALID_VERTEX_ID, ErrNoRoutableNode
	}

	for r := rt.initialRadius; r <= rt.maxRadius; r *= 2 {
		boxes, _ := geo.BoundingRect(lat, lon, r)
		best, bestDist := rt.searchBoxes(lat, lon, boxes)
		if best != datastructure.INVALID_VERTEX_ID && bestDist <= r {
			return best, nil
		}
	}

	best, _ := nearestRoutable(rt.graph, lat, lon)
	if best == datastructure.INVALID_VERTEX_ID {
		return best, ErrNoRoutableNode
	}
	return best, nil
}

// SearchWithinRadius. routable vertices within radius (km) of the query point
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Index {
	boxes, _ := geo.BoundingRect(qLat, qLon, radius)
	results := make([]datastructure.Index, 0, 10)
	for _, box := range boxes {
		rt.tr.Search(box.Min, box.Max,
			func(min, max [2]float64, data datastructure.Index) bool {
				if geo.CalculateHaversineDistance(qLat, qLon, min[1], min[0]) <= radius {
					results = append(results, data)
				}
				return true
			})
	}
	return results
}

func (rt *Rtree) searchBoxes(lat, lon float64, boxes []geo.BoundingBox) (datastructure.Index, float64) {
	best := datastructure.INVALID_VERTEX_ID
	bestDist := math.Inf(1)
	for _, box := range boxes {
		rt.tr.Search(box.Min, box.Max,
			func(min, max [2]float64, data datastructure.Index) bool {
				d := geo.CalculateHaversineDistance(lat, lon, min[1], min[0])
				if d < bestDist || (d == bestDist && data < best) {
					best, bestDist = data, d
				}
				return true
			})
	}
	return best, bestDist
}
