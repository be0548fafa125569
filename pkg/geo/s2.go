package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// BoundingBox in degrees. [MinLon,MinLat] - [MaxLon,MaxLat], same axis order as the r-tree.
type BoundingBox struct {
	Min [2]float64
	Max [2]float64
}

// BoundingRect. boxes covering the spherical cap of radius radiusKm around (lat,lon).
// returns two boxes when the cap crosses the antimeridian, and full=true when the cap covers every longitude
// (pole inside the cap or radius too large).
func BoundingRect(lat, lon, radiusKm float64) (boxes []BoundingBox, full bool) {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	capRegion := s2.CapFromCenterAngle(center, s1.Angle(radiusKm/earthRadiusKM))
	rect := capRegion.RectBound()

	minLat := s1.Angle(rect.Lat.Lo).Degrees()
	maxLat := s1.Angle(rect.Lat.Hi).Degrees()

	if rect.Lng.IsFull() {
		return []BoundingBox{{Min: [2]float64{-180, minLat}, Max: [2]float64{180, maxLat}}}, true
	}

	minLon := s1.Angle(rect.Lng.Lo).Degrees()
	maxLon := s1.Angle(rect.Lng.Hi).Degrees()

	if rect.Lng.IsInverted() {
		return []BoundingBox{
			{Min: [2]float64{minLon, minLat}, Max: [2]float64{180, maxLat}},
			{Min: [2]float64{-180, minLat}, Max: [2]float64{maxLon, maxLat}},
		}, false
	}

	return []BoundingBox{{Min: [2]float64{minLon, minLat}, Max: [2]float64{maxLon, maxLat}}}, false
}
