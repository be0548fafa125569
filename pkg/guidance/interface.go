package guidance

import "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"

type Graph interface {
	GetVertex(u datastructure.Index) datastructure.Vertex
	FindOutEdge(u, v datastructure.Index) (datastructure.OutEdge, bool)
	ForOutEdgesOf(u datastructure.Index, handle func(e *datastructure.OutEdge))
	GetStreetName(e *datastructure.OutEdge) string
}
