package guidance

import (
	"math"

	"github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
)

/*
getAlternativeTurns. number of roads leaving tail other than the one we came from, plus alternatives
that are neither currentEdge nor the reverse of prevEdge:

		 |
		 |
	 alternative
		 |
--prev-- B --currentEdge---
		 |
		 |
	alternative
		 |

three turns are possible at B.
*/ // nolint: gofmt
func (db *DirectionBuilder) getAlternativeTurns(tailId, headId, prevVertexId datastructure.Index) (int, []datastructure.OutEdge) {
	alternativeTurns := make([]datastructure.OutEdge, 0)

	db.graph.ForOutEdgesOf(tailId, func(e *datastructure.OutEdge) {
		if e.GetHead() != prevVertexId && e.GetHead() != headId {
			alternativeTurns = append(alternativeTurns, *e)
		}
	})

	return 1 + len(alternativeTurns), alternativeTurns
}

/*
getOtherEdgeContinueDirection. an alternative edge leaving tail in a continue or slight direction:

				---- currentEdge-----

--prevEdge-- tail

				----alternativeEdge-----
*/ // nolint: gofmt
func (db *DirectionBuilder) getOtherEdgeContinueDirection(tailLat, tailLon, prevInitialBearing float64,
	alternativeTurns []datastructure.OutEdge) *datastructure.OutEdge {
	for i := range alternativeTurns {
		node := db.graph.GetVertex(alternativeTurns[i].GetHead())

		tmpSign := getTurnDirection(tailLat, tailLon, node.GetLat(), node.GetLon(), prevInitialBearing)
		if abs(tmpSign) <= 1 {
			return &alternativeTurns[i]
		}
	}
	return nil
}

func isLeavingCurrentStreet(prevStreetName, currentStreetName string) bool {
	if isEmpty(prevStreetName) && isEmpty(currentStreetName) {
		return false
	}
	return !isSameName(currentStreetName, prevStreetName)
}

func isSameName(name1, name2 string) bool {
	if name1 == "" || name2 == "" {
		// unnamed osm ways never match
		return false
	}
	return name1 == name2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func radiansToDegreeAbs(rad float64) float64 {
	return util.RadiansToDegree(math.Abs(rad))
}
