package routing

import (
	"fmt"

	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
)

// ReconstructPath. walk predecessor links from goal back to start. returns nil if goal is not linked to start.
func ReconstructPath(cameFrom map[da.Index]da.Index, start, goal da.Index) []da.Index {
	path := []da.Index{goal}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok || len(path) > len(cameFrom) {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	return util.ReverseG(path)
}

// AssemblePath. coordinates of the path vertices and the path length in km, summed over consecutive coordinates.
func AssemblePath(graph *da.Graph, path []da.Index) ([]geo.Coordinate, float64, error) {
	coords := make([]geo.Coordinate, 0, len(path))
	for _, u := range path {
		if !graph.HasVertex(u) {
			return nil, 0, fmt.Errorf("%w: vertex %d", ErrUnknownNode, u)
		}
		lat, lon := graph.GetVertexCoordinates(u)
		coords = append(coords, geo.NewCoordinate(lat, lon))
	}
	return coords, geo.PathLength(coords), nil
}
