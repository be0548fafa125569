package routing

import (
	"github.com/lintang-b-s/navigatorx-astar/pkg"
	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
)

// Dijkstra. exact single-source search without heuristic, the baseline A* results are checked against.
type Dijkstra struct {
	graph *da.Graph

	dist   []float64
	parent []da.Index
	pq     *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		pq:    da.NewFourAryHeap[da.Index](),
	}
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfVertices()
	us.dist = make([]float64, n)
	us.parent = make([]da.Index, n)
	for i := 0; i < n; i++ {
		us.dist[i] = pkg.INF_WEIGHT
		us.parent[i] = da.INVALID_VERTEX_ID
	}
	us.pq.Clear()
	us.numSettledNodes = 0
}

// ShortestPath. single-source shortest paths, from s to all other vertices.
// unreachable vertices keep pkg.INF_WEIGHT. not safe for concurrent use, the search state is reused.
func (us *Dijkstra) ShortestPath(s da.Index) []float64 {
	us.Preallocate()
	if !us.graph.HasVertex(s) {
		return us.dist
	}

	us.dist[s] = 0
	us.pq.Insert(da.NewPriorityQueueNode(0, s))

	for !us.pq.IsEmpty() {
		us.graphSearchUni()
	}

	return us.dist
}

func (us *Dijkstra) graphSearchUni() {
	minNode, _ := us.pq.ExtractMin()
	uId := minNode.GetItem()
	if minNode.GetRank() > us.dist[uId] {
		// stale entry
		return
	}
	us.numSettledNodes++

	us.graph.ForOutEdgesOf(uId, func(e *da.OutEdge) {
		vId := e.GetHead()
		newDist := us.dist[uId] + e.GetWeight()
		if newDist < us.dist[vId] {
			us.dist[vId] = newDist
			us.parent[vId] = uId
			us.pq.Insert(da.NewPriorityQueueNode(newDist, vId))
		}
	})
}

// PathTo. vertex sequence from the last ShortestPath source to t, nil if t was not reached
func (us *Dijkstra) PathTo(t da.Index) []da.Index {
	if int(t) >= len(us.dist) || us.dist[t] == pkg.INF_WEIGHT {
		return nil
	}
	path := []da.Index{t}
	for u := us.parent[t]; u != da.INVALID_VERTEX_ID; u = us.parent[u] {
		path = append(path, u)
	}
	return util.ReverseG(path)
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}
