package spatialindex

import (
	"errors"
	"math"

	"github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
)

var ErrNoRoutableNode = errors.New("graph has no routable node")

// LinearScan. nearest routable node by scanning every vertex in index order.
// on equal distance the vertex with the smaller index wins.
type LinearScan struct {
	graph *datastructure.Graph
}

func NewLinearScan(graph *datastructure.Graph) *LinearScan {
	return &LinearScan{graph: graph}
}

func (ls *LinearScan) Nearest(lat, lon float64) (datastructure.Index, error) {
	best, _ := nearestRoutable(ls.graph, lat, lon)
	if best == datastructure.INVALID_VERTEX_ID {
		return best, ErrNoRoutableNode
	}
	return best, nil
}

func nearestRoutable(graph *datastructure.Graph, lat, lon float64) (datastructure.Index, float64) {
	best := datastructure.INVALID_VERTEX_ID
	bestDist := math.Inf(1)
	graph.ForRoutableVertices(func(v *datastructure.Vertex) {
		d := geo.CalculateHaversineDistance(lat, lon, v.GetLat(), v.GetLon())
		if d < bestDist {
			best, bestDist = v.GetID(), d
		}
	})
	return best, bestDist
}
