package routing

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructPath(t *testing.T) {
	cameFrom := map[da.Index]da.Index{
		1: 0,
		2: 1,
		3: 2,
		7: 3,
	}

	assert.Equal(t, []da.Index{0, 1, 2, 3, 7}, ReconstructPath(cameFrom, 0, 7))
	assert.Equal(t, []da.Index{2, 3}, ReconstructPath(cameFrom, 2, 3))
	assert.Equal(t, []da.Index{5}, ReconstructPath(cameFrom, 5, 5))
	assert.Nil(t, ReconstructPath(cameFrom, 0, 9))

	cyclic := map[da.Index]da.Index{1: 2, 2: 1}
	assert.Nil(t, ReconstructPath(cyclic, 0, 1))
}

func TestAssemblePath(t *testing.T) {
	g := chainGraph()

	coords, length, err := AssemblePath(g, []da.Index{0, 1, 2})
	require.NoError(t, err)
	require.Len(t, coords, 3)
	assert.Equal(t, 0.002, coords[2].Lon)
	assert.InEpsilon(t, 2*0.111195, length, 0.001)

	_, _, err = AssemblePath(g, []da.Index{0, 99})
	assert.ErrorIs(t, err, ErrUnknownNode)

	coords, length, err = AssemblePath(g, nil)
	require.NoError(t, err)
	assert.Empty(t, coords)
	assert.Equal(t, 0.0, length)
}
