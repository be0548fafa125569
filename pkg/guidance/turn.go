package guidance

import (
	"math"

	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
)

// initial bearing (bearing from a to b measured at a), radians
func computeInitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	bearing := geo.BearingTo(lat1, lon1, lat2, lon2)
	bearing = util.DegreeToRadians(bearing)
	return bearing
}

// computeDeltaBearing. initial bearing of (lat,lon)->... minus prevInitialBearing, radians. negative = left
func computeDeltaBearing(prevLat, prevLon, lat, lon, prevInitialBearing float64) float64 {
	initialBearing := computeInitialBearing(prevLat, prevLon, lat, lon)
	prevInitialBearing, initialBearing = alignInitialBearing(prevInitialBearing, initialBearing)
	return initialBearing - prevInitialBearing
}

/*
alignInitialBearing. keep the bearing difference inside [-180°, 180°].

	          \
			   \ initialBearing (350°)
				\
				/
			   /		prevInitialBearing (20°)
			  /

350° - 20° = 330° reads as a right turn, the road actually bends left: prevInitialBearing + 360°.

		 /	initialBearing (10°)
		/
	   /
	   \
		\
		 \		prevInitialBearing (340°)
		  \

10° - 340° = -330° reads as a left turn, the road actually bends right: initialBearing + 360°.
*/ // nolint: gofmt
func alignInitialBearing(prevInitialBearing, initialBearing float64) (float64, float64) {
	dif := util.RadiansToDegree(initialBearing) - util.RadiansToDegree(prevInitialBearing)
	if dif > 180 {
		prevInitialBearing += 2 * math.Pi
	} else if dif < -180 {
		initialBearing += 2 * math.Pi
	}
	return prevInitialBearing, initialBearing
}

func getTurnDirection(prevLat, prevLon, lat, long, prevInitialBearing float64) int {
	delta := computeDeltaBearing(prevLat, prevLon, lat, long, prevInitialBearing)
	absDelta := math.Abs(delta)
	deltaDegree := util.RadiansToDegree(absDelta)
	if deltaDegree < 12 {
		return CONTINUE_ON_STREET
	} else if deltaDegree < 40 {

		if delta < 0 {
			return TURN_SLIGHT_LEFT
		} else {
			return TURN_SLIGHT_RIGHT
		}
	} else if deltaDegree < 105 {

		if delta < 0 {
			return TURN_LEFT
		} else {
			return TURN_RIGHT
		}

	} else if delta < 0 {
		return TURN_SHARP_LEFT

	} else {
		return TURN_SHARP_RIGHT

	}
}
