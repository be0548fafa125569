package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeEngine. route distance encodes the source latitude, negative latitudes fail
type fakeEngine struct {
	err error
}

func (f *fakeEngine) ShortestPath(_ context.Context, srcLat, srcLon, dstLat, dstLon float64) (*engine.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	if srcLat < 0 {
		return nil, fmt.Errorf("%w: frontier exhausted", routing.ErrPathNotFound)
	}
	return &engine.Route{DistanceKm: srcLat}, nil
}

func (f *fakeEngine) Status() engine.Status {
	return engine.Status{Nodes: 3, RoutableNodes: 2, Edges: 2}
}

func TestWrapRoutingError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode error
	}{
		{"invalid coordinate", fmt.Errorf("%w: latitude 91", geo.ErrInvalidCoordinate), util.ErrBadParamInput},
		{"no routable node", spatialindex.ErrNoRoutableNode, util.ErrNotFound},
		{"path not found", routing.ErrPathNotFound, util.ErrNotFound},
		{"budget exhausted", routing.ErrSearchBudgetExhausted, util.ErrNotFound},
		{"unknown node", routing.ErrUnknownNode, util.ErrNotFound},
		{"context canceled", context.Canceled, util.ErrRequestCanceled},
		{"deadline exceeded", fmt.Errorf("search: %w", context.DeadlineExceeded), util.ErrRequestCanceled},
		{"unexpected", errors.New("disk on fire"), util.ErrInternalServerError},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRoutingService(zap.NewNop(), &fakeEngine{err: tt.err}, 1)
			_, err := rs.ShortestPath(context.Background(), 0, 0, 0, 0)
			require.Error(t, err)

			var uErr *util.Error
			require.True(t, errors.As(err, &uErr))
			assert.Equal(t, tt.wantCode, uErr.Code())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestShortestPaths(t *testing.T) {
	rs := NewRoutingService(zap.NewNop(), &fakeEngine{}, 4)

	queries := make([]Query, 20)
	for i := range queries {
		queries[i] = Query{SrcLat: float64(i)}
	}
	queries[7].SrcLat = -1

	results, err := rs.ShortestPaths(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, results, 20)

	for i, res := range results {
		if i == 7 {
			assert.ErrorIs(t, res.Err, routing.ErrPathNotFound)
			assert.Nil(t, res.Route)
			continue
		}
		require.NoError(t, res.Err)
		assert.Equal(t, float64(i), res.Route.DistanceKm)
	}
}

func TestShortestPathsBatchSize(t *testing.T) {
	rs := NewRoutingService(zap.NewNop(), &fakeEngine{}, 4)

	_, err := rs.ShortestPaths(context.Background(), nil)
	var uErr *util.Error
	require.True(t, errors.As(err, &uErr))
	assert.Equal(t, util.ErrBadParamInput, uErr.Code())

	_, err = rs.ShortestPaths(context.Background(), make([]Query, 101))
	require.True(t, errors.As(err, &uErr))
	assert.Equal(t, util.ErrBadParamInput, uErr.Code())
}

func TestStatus(t *testing.T) {
	rs := NewRoutingService(zap.NewNop(), &fakeEngine{}, 0)
	assert.Equal(t, engine.Status{Nodes: 3, RoutableNodes: 2, Edges: 2}, rs.Status())
}
