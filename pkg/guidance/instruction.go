package guidance

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
)

const (
	KEEP_LEFT          = -7
	TURN_SHARP_LEFT    = -3
	TURN_LEFT          = -2
	TURN_SLIGHT_LEFT   = -1
	CONTINUE_ON_STREET = 0
	TURN_SLIGHT_RIGHT  = 1
	TURN_RIGHT         = 2
	TURN_SHARP_RIGHT   = 3
	FINISH             = 4
	KEEP_RIGHT         = 7
	START              = 101
	IGNORE             = 9999999
)

type instruction struct {
	point      geo.Coordinate
	turnSign   int
	streetName string
	heading    float64 // degrees
	distance   float64 // km until the next instruction
	points     []geo.Coordinate
}

func newInstruction(sign int, streetName string, point geo.Coordinate, heading float64) *instruction {
	return &instruction{
		point:      point,
		turnSign:   sign,
		streetName: streetName,
		heading:    heading,
		points:     []geo.Coordinate{point},
	}
}

func (instr *instruction) addSegment(head geo.Coordinate, length float64) {
	instr.points = append(instr.points, head)
	instr.distance += length
}

func bearingToCompass(bearing float64) string {
	if bearing < 22.5 {
		return "North"
	} else if bearing < 67.5 {
		return "North East"
	} else if bearing < 112.5 {
		return "East"
	} else if bearing < 157.5 {
		return "South East"
	} else if bearing < 202.5 {
		return "South"
	} else if bearing < 247.5 {
		return "South West"
	} else if bearing < 292.5 {
		return "West"
	} else if bearing < 337.5 {
		return "North West"
	} else {
		return "North"
	}
}

func (instr *instruction) description() string {
	streetName := instr.streetName
	var description string

	switch instr.turnSign {
	case CONTINUE_ON_STREET:
		if isEmpty(streetName) {
			description = "Continue"
		} else {
			description = fmt.Sprintf("Continue onto %s", streetName)
		}
	case START:
		compassDir := bearingToCompass(instr.heading)
		if isEmpty(streetName) {
			description = fmt.Sprintf("Head %s", compassDir)
		} else {
			description = fmt.Sprintf("Head %s on %s", compassDir, streetName)
		}
	case FINISH:
		description = "You have arrived at your destination"
	default:
		dir, _ := turnDescription(instr.turnSign)
		if dir == "" {
			description = fmt.Sprintf("unknown %d", instr.turnSign)
		} else if isEmpty(streetName) {
			description = dir
		} else {
			switch instr.turnSign {
			case KEEP_LEFT, KEEP_RIGHT:
				description = fmt.Sprintf("%s to continue on %s", dir, streetName)
			default:
				description = fmt.Sprintf("%s onto %s", dir, streetName)
			}
		}
	}

	return description
}

func isEmpty(str string) bool {
	return strings.TrimSpace(str) == ""
}

// turnDescription. human readable text and turn type of a turn sign
func turnDescription(sign int) (string, string) {
	switch sign {
	case KEEP_LEFT:
		return "Keep left", "KEEP_LEFT"
	case TURN_SHARP_LEFT:
		return "Turn sharp left", "TURN_SHARP_LEFT"
	case TURN_LEFT:
		return "Turn left", "TURN_LEFT"
	case TURN_SLIGHT_LEFT:
		return "Turn slight left", "TURN_SLIGHT_LEFT"
	case CONTINUE_ON_STREET:
		return "Continue", "CONTINUE_ON_STREET"
	case TURN_SLIGHT_RIGHT:
		return "Turn slight right", "TURN_SLIGHT_RIGHT"
	case TURN_RIGHT:
		return "Turn right", "TURN_RIGHT"
	case TURN_SHARP_RIGHT:
		return "Turn sharp right", "TURN_SHARP_RIGHT"
	case KEEP_RIGHT:
		return "Keep right", "KEEP_RIGHT"
	case START:
		return "Start", "START"
	case FINISH:
		return "Finish", "FINISH"
	default:
		return "", ""
	}
}

type DrivingDirection struct {
	Instruction string
	TurnType    string
	StreetName  string
	Point       geo.Coordinate
	DistanceKm  float64 // length of this step
	TurnBearing float64 // heading after the maneuver, degrees
	Polyline    string
}

func newDrivingDirection(ins *instruction) DrivingDirection {
	_, turnType := turnDescription(ins.turnSign)
	return DrivingDirection{
		Instruction: ins.description(),
		TurnType:    turnType,
		StreetName:  ins.streetName,
		Point:       ins.point,
		DistanceKm:  util.RoundFloat(ins.distance, 6),
		TurnBearing: util.RoundFloat(ins.heading, 2),
		Polyline:    geo.PolylineFromCoords(ins.points),
	}
}
