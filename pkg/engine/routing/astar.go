package routing

import (
	"fmt"

	"github.com/lintang-b-s/navigatorx-astar/pkg"
	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
)

type SearchResult struct {
	Path       []da.Index
	Cost       float64 // gScore of the goal, km
	Expansions int
}

// AStar. unidirectional A* over the road graph with the haversine distance as heuristic.
// safe for concurrent use, every ShortestPath call owns its search state.
type AStar struct {
	graph         *da.Graph
	maxIterations int
}

// NewAStar. maxIterations bounds the number of vertex expansions per query, values <= 0 use the default.
func NewAStar(graph *da.Graph, maxIterations int) *AStar {
	if maxIterations <= 0 {
		maxIterations = pkg.DEFAULT_MAX_SEARCH_ITERATIONS
	}
	return &AStar{
		graph:         graph,
		maxIterations: maxIterations,
	}
}

func (as *AStar) MaxIterations() int {
	return as.maxIterations
}

// searchState. per query mutable state
type searchState struct {
	gScore   map[da.Index]float64
	cameFrom map[da.Index]da.Index
	closed   map[da.Index]struct{}
	pq       *da.MinHeap[da.Index]

	expansions int
}

func newSearchState() *searchState {
	return &searchState{
		gScore:   make(map[da.Index]float64),
		cameFrom: make(map[da.Index]da.Index),
		closed:   make(map[da.Index]struct{}),
		pq:       da.NewBinaryHeap[da.Index](),
	}
}

// ShortestPath. minimum cost path from s to t.
// the frontier keeps stale entries, an extracted vertex that is already closed is skipped without
// counting as an expansion. once maxIterations expansions are done the search stops with
// ErrSearchBudgetExhausted even if a path exists.
func (as *AStar) ShortestPath(s, t da.Index) (SearchResult, error) {
	if !as.graph.IsRoutable(s) {
		return SearchResult{}, unroutableError(s)
	}
	if !as.graph.IsRoutable(t) {
		return SearchResult{}, unroutableError(t)
	}

	st := newSearchState()
	tLat, tLon := as.graph.GetVertexCoordinates(t)
	heuristic := func(u da.Index) float64 {
		uLat, uLon := as.graph.GetVertexCoordinates(u)
		return geo.CalculateHaversineDistance(uLat, uLon, tLat, tLon)
	}

	st.gScore[s] = 0
	st.pq.Insert(da.NewPriorityQueueNode(heuristic(s), s))

	for !st.pq.IsEmpty() {
		minNode, _ := st.pq.ExtractMin()
		u := minNode.GetItem()
		if _, ok := st.closed[u]; ok {
			// stale entry
			continue
		}

		if st.expansions >= as.maxIterations {
			return SearchResult{Expansions: st.expansions},
				fmt.Errorf("%w: %d expansions from vertex %d to %d", ErrSearchBudgetExhausted, st.expansions, s, t)
		}
		st.expansions++
		st.closed[u] = struct{}{}

		if u == t {
			return SearchResult{
				Path:       ReconstructPath(st.cameFrom, s, t),
				Cost:       st.gScore[t],
				Expansions: st.expansions,
			}, nil
		}

		uG := st.gScore[u]
		as.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
			v := e.GetHead()
			if _, ok := st.closed[v]; ok {
				return
			}

			newG := uG + e.GetWeight()
			if oldG, ok := st.gScore[v]; ok && newG >= oldG {
				return
			}

			st.gScore[v] = newG
			st.cameFrom[v] = u
			st.pq.Insert(da.NewPriorityQueueNode(newG+heuristic(v), v))
		})
	}

	return SearchResult{Expansions: st.expansions},
		fmt.Errorf("%w: frontier exhausted after %d expansions", ErrPathNotFound, st.expansions)
}
