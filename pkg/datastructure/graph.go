package datastructure

import (
	"math"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
)

type Vertex struct {
	lat float64
	lon float64
	id  Index
}

func NewVertex(lat, lon float64, id Index) Vertex {
	return Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

// OutEdge. adjacency entry of the tail vertex, weight is the great-circle distance in km
type OutEdge struct {
	head       Index
	weight     float64
	streetName Index // index into Graph.streetNames, 0 = unnamed
}

func NewOutEdge(head Index, weight float64) OutEdge {
	return OutEdge{
		head:   head,
		weight: weight,
	}
}

func NewNamedOutEdge(head Index, weight float64, streetName Index) OutEdge {
	return OutEdge{
		head:       head,
		weight:     weight,
		streetName: streetName,
	}
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

func (e *OutEdge) GetStreetNameID() Index {
	return e.streetName
}

// Graph. undirected road network stored as mirrored adjacency lists.
// read-only once NewGraph returns, safe for concurrent queries.
type Graph struct {
	vertices []Vertex
	nodeIDs  []string         // vertex index -> external (osm) node id
	idMap    map[string]Index // external node id -> vertex index
	outEdges [][]OutEdge

	streetNames []string

	numEdges    int
	numRoutable int
}

type GraphOption func(*Graph)

// WithStreetNames. lookup table for OutEdge street name ids. names[0] should be "".
func WithStreetNames(names []string) GraphOption {
	return func(g *Graph) {
		g.streetNames = names
	}
}

// NewGraph. vertices[i], nodeIDs[i] and outEdges[i] all describe vertex i.
func NewGraph(vertices []Vertex, nodeIDs []string, outEdges [][]OutEdge, opts ...GraphOption) *Graph {
	idMap := make(map[string]Index, len(nodeIDs))
	for i, id := range nodeIDs {
		idMap[id] = Index(i)
	}

	numEdges := 0
	numRoutable := 0
	for _, edges := range outEdges {
		numEdges += len(edges)
		if len(edges) > 0 {
			numRoutable++
		}
	}

	g := &Graph{
		vertices:    vertices,
		nodeIDs:     nodeIDs,
		idMap:       idMap,
		outEdges:    outEdges,
		numEdges:    numEdges,
		numRoutable: numRoutable,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

// NumberOfEdges. number of directed adjacency entries (twice the number of road segments)
func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

func (g *Graph) NumberOfRoutableVertices() int {
	return g.numRoutable
}

func (g *Graph) HasVertex(u Index) bool {
	return int(u) < len(g.vertices)
}

func (g *Graph) GetVertex(u Index) Vertex {
	return g.vertices[u]
}

func (g *Graph) GetVertexCoordinates(u Index) (float64, float64) {
	v := g.vertices[u]
	return v.lat, v.lon
}

// GetIndex. vertex index of an external node id
func (g *Graph) GetIndex(nodeID string) (Index, bool) {
	u, ok := g.idMap[nodeID]
	return u, ok
}

// GetID. external node id of vertex u
func (g *Graph) GetID(u Index) string {
	return g.nodeIDs[u]
}

// IsRoutable. u has at least one adjacency entry
func (g *Graph) IsRoutable(u Index) bool {
	return g.HasVertex(u) && len(g.outEdges[u]) > 0
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.outEdges[u])
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for i := range g.outEdges[u] {
		handle(&g.outEdges[u][i])
	}
}

// FindOutEdge. adjacency entry (u,v) if any
func (g *Graph) FindOutEdge(u, v Index) (OutEdge, bool) {
	for _, e := range g.outEdges[u] {
		if e.head == v {
			return e, true
		}
	}
	return OutEdge{}, false
}

// GetStreetName. name of the way the edge was built from, "" if unnamed
func (g *Graph) GetStreetName(e *OutEdge) string {
	if int(e.streetName) >= len(g.streetNames) {
		return ""
	}
	return g.streetNames[e.streetName]
}

// ForVertices. iterate vertices in index order
func (g *Graph) ForVertices(handle func(v *Vertex)) {
	for i := range g.vertices {
		handle(&g.vertices[i])
	}
}

// ForRoutableVertices. iterate vertices with at least one adjacency entry, in index order
func (g *Graph) ForRoutableVertices(handle func(v *Vertex)) {
	for i := range g.vertices {
		if len(g.outEdges[i]) == 0 {
			continue
		}
		handle(&g.vertices[i])
	}
}
