package guidance

import (
	"github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
)

// DirectionBuilder. turn-by-turn directions of a path, derived from the bearing change at every
// vertex and the street names of the edges.
type DirectionBuilder struct {
	graph Graph
}

func NewDirectionBuilder(graph Graph) *DirectionBuilder {
	return &DirectionBuilder{
		graph: graph,
	}
}

// GetDrivingDirections. path is a vertex sequence where consecutive vertices are adjacent.
// a path with fewer than two vertices has no directions.
func (db *DirectionBuilder) GetDrivingDirections(path []datastructure.Index) []DrivingDirection {
	if len(path) < 2 {
		return nil
	}

	instructions := make([]*instruction, 0, 4)
	var (
		curr           *instruction
		prevStreetName string
		lastHeading    float64
	)

	for i := 0; i+1 < len(path); i++ {
		tailId, headId := path[i], path[i+1]
		tail := db.graph.GetVertex(tailId)
		head := db.graph.GetVertex(headId)
		tailPoint := geo.NewCoordinate(tail.GetLat(), tail.GetLon())
		headPoint := geo.NewCoordinate(head.GetLat(), head.GetLon())

		var streetName string
		edge, ok := db.graph.FindOutEdge(tailId, headId)
		if ok {
			streetName = db.graph.GetStreetName(&edge)
		}
		length := geo.CalculateHaversineDistance(tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon())
		heading := geo.BearingTo(tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon())

		if curr == nil {
			curr = newInstruction(START, streetName, tailPoint, heading)
			instructions = append(instructions, curr)
		} else {
			turnSign := db.getTurnSign(path[i-1], tailId, headId, streetName, prevStreetName)
			if turnSign != IGNORE {
				curr = newInstruction(turnSign, streetName, tailPoint, heading)
				instructions = append(instructions, curr)
			}
		}

		curr.addSegment(headPoint, length)
		prevStreetName = streetName
		lastHeading = heading
	}

	last := db.graph.GetVertex(path[len(path)-1])
	finish := newInstruction(FINISH, prevStreetName, geo.NewCoordinate(last.GetLat(), last.GetLon()), lastHeading)
	instructions = append(instructions, finish)

	drivingDirections := make([]DrivingDirection, len(instructions))
	for i, ins := range instructions {
		drivingDirections[i] = newDrivingDirection(ins)
	}
	return drivingDirections
}

/*
getTurnSign. turn sign at tail of the two adjacent path edges (prevNode,tail) and (tail,head):

prevNode----prevEdge----tail
							|
							|
						currentEdge
							|
							|
						head

returns IGNORE when the maneuver needs no instruction.
*/ // nolint: gofmt
func (db *DirectionBuilder) getTurnSign(prevNodeId, tailId, headId datastructure.Index, name, prevName string) int {
	prevNode := db.graph.GetVertex(prevNodeId)
	tail := db.graph.GetVertex(tailId)
	head := db.graph.GetVertex(headId)

	prevInitialBearing := computeInitialBearing(prevNode.GetLat(), prevNode.GetLon(),
		tail.GetLat(), tail.GetLon())
	sign := getTurnDirection(tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon(), prevInitialBearing)

	alternativeTurnsCount, alternativeTurns := db.getAlternativeTurns(tailId, headId, prevNodeId)

	if alternativeTurnsCount == 1 {
		// no junction at tail, only a bend of the road
		if abs(sign) > 1 && !isSameName(name, prevName) {
			return sign
		}
		return IGNORE
	}

	if abs(sign) > 1 {
		if isSameName(name, prevName) {
			return IGNORE
		}
		return sign
	}

	prevCurrDelta := computeDeltaBearing(tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon(), prevInitialBearing)

	otherContinueEdge := db.getOtherEdgeContinueDirection(tail.GetLat(), tail.GetLon(), prevInitialBearing, alternativeTurns)
	if otherContinueEdge != nil && !isSameName(name, prevName) {
		node := db.graph.GetVertex(otherContinueEdge.GetHead())
		prevOtherDelta := computeDeltaBearing(tail.GetLat(), tail.GetLon(), node.GetLat(), node.GetLon(), prevInitialBearing)

		/*
			two roads leave tail in roughly the same direction:

					-----currentEdge---------
			tail
					-----otherContinueEdge---

			keep left when currentEdge bends less to the right than otherContinueEdge
		*/ // nolint: gofmt
		if prevCurrDelta > prevOtherDelta {
			return KEEP_RIGHT
		}
		return KEEP_LEFT
	}

	if isLeavingCurrentStreet(prevName, name) || radiansToDegreeAbs(prevCurrDelta) > 34 {
		return sign
	}
	return IGNORE
}
