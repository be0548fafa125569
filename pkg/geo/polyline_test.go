package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineFromCoords(t *testing.T) {
	// example from the google encoded polyline algorithm format docs
	path := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	encoded := PolylineFromCoords(path)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := CoordsFromPolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, 43.252, decoded[2].Lat, 1e-5)
	assert.InDelta(t, -126.453, decoded[2].Lon, 1e-5)
}
