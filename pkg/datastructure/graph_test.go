package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a - b - c, d isolated
func buildSmallGraph() *Graph {
	vertices := []Vertex{
		NewVertex(0, 0, 0),
		NewVertex(0, 0.001, 1),
		NewVertex(0, 0.002, 2),
		NewVertex(1, 1, 3),
	}
	nodeIDs := []string{"a", "b", "c", "d"}
	outEdges := [][]OutEdge{
		{NewOutEdge(1, 0.111)},
		{NewOutEdge(0, 0.111), NewOutEdge(2, 0.111)},
		{NewOutEdge(1, 0.111)},
		nil,
	}
	return NewGraph(vertices, nodeIDs, outEdges)
}

func TestGraphCounts(t *testing.T) {
	g := buildSmallGraph()

	assert.Equal(t, 4, g.NumberOfVertices())
	assert.Equal(t, 4, g.NumberOfEdges())
	assert.Equal(t, 3, g.NumberOfRoutableVertices())
}

func TestGraphIDTranslation(t *testing.T) {
	g := buildSmallGraph()

	u, ok := g.GetIndex("c")
	require.True(t, ok)
	assert.Equal(t, Index(2), u)
	assert.Equal(t, "c", g.GetID(u))

	_, ok = g.GetIndex("zzz")
	assert.False(t, ok)

	lat, lon := g.GetVertexCoordinates(u)
	assert.Equal(t, 0.0, lat)
	assert.Equal(t, 0.002, lon)
}

func TestGraphRoutable(t *testing.T) {
	g := buildSmallGraph()

	assert.True(t, g.IsRoutable(0))
	assert.True(t, g.IsRoutable(1))
	assert.False(t, g.IsRoutable(3))
	assert.False(t, g.IsRoutable(INVALID_VERTEX_ID))
	assert.Equal(t, 2, g.GetOutDegree(1))

	var routable []Index
	g.ForRoutableVertices(func(v *Vertex) {
		routable = append(routable, v.GetID())
	})
	assert.Equal(t, []Index{0, 1, 2}, routable)

	var all []Index
	g.ForVertices(func(v *Vertex) {
		all = append(all, v.GetID())
	})
	assert.Equal(t, []Index{0, 1, 2, 3}, all)
}

func TestGraphOutEdges(t *testing.T) {
	g := buildSmallGraph()

	var heads []Index
	g.ForOutEdgesOf(1, func(e *OutEdge) {
		heads = append(heads, e.GetHead())
	})
	assert.Equal(t, []Index{0, 2}, heads)

	e, ok := g.FindOutEdge(2, 1)
	require.True(t, ok)
	assert.Equal(t, 0.111, e.GetWeight())

	_, ok = g.FindOutEdge(0, 2)
	assert.False(t, ok)
}

func TestGraphStreetNames(t *testing.T) {
	vertices := []Vertex{NewVertex(0, 0, 0), NewVertex(0, 0.001, 1)}
	outEdges := [][]OutEdge{
		{NewNamedOutEdge(1, 0.111, 1)},
		{NewNamedOutEdge(0, 0.111, 1)},
	}
	g := NewGraph(vertices, []string{"a", "b"}, outEdges, WithStreetNames([]string{"", "Jalan Sudirman"}))

	e, ok := g.FindOutEdge(0, 1)
	require.True(t, ok)
	assert.Equal(t, Index(1), e.GetStreetNameID())
	assert.Equal(t, "Jalan Sudirman", g.GetStreetName(&e))

	unnamed := NewOutEdge(1, 0.1)
	assert.Equal(t, "", g.GetStreetName(&unnamed))

	noTable := NewGraph(vertices, []string{"a", "b"}, outEdges)
	assert.Equal(t, "", noTable.GetStreetName(&e))
}
