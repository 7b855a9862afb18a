// Package skeleton holds the stem skeleton mesh: vertices connected by
// edges, each with a position and a skin radius.
package skeleton

import (
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// VertexID identifies a vertex within one Mesh.
type VertexID int

// NoParent is the parent of a root vertex.
const NoParent VertexID = -1

// Vertex is one skeleton vertex.
type Vertex struct {
	Position math.Vec3
	Parent   VertexID
	// Radius is the skin radius; zero until assigned.
	Radius float64
}

// Edge connects a vertex to the vertex it was extruded from.
type Edge struct {
	From, To VertexID
}

// Mesh is an append-only skeleton. Vertices are never removed, so a
// VertexID stays valid for the life of the mesh.
type Mesh struct {
	vertices []Vertex
	edges    []Edge
}

// New returns a mesh holding a single root vertex at origin.
func New(origin math.Vec3) (*Mesh, VertexID) {
	m := &Mesh{}
	m.vertices = append(m.vertices, Vertex{Position: origin, Parent: NoParent})
	return m, 0
}

// Extrude adds a vertex connected to from, at from's position.
func (m *Mesh) Extrude(from VertexID) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{
		Position: m.vertices[from].Position,
		Parent:   from,
	})
	m.edges = append(m.edges, Edge{From: from, To: id})
	return id
}

// Position returns the position of v.
func (m *Mesh) Position(v VertexID) math.Vec3 {
	return m.vertices[v].Position
}

// SetPosition moves v.
func (m *Mesh) SetPosition(v VertexID, p math.Vec3) {
	m.vertices[v].Position = p
}

// Radius returns the skin radius of v.
func (m *Mesh) Radius(v VertexID) float64 {
	return m.vertices[v].Radius
}

// SetRadius sets the skin radius of v.
func (m *Mesh) SetRadius(v VertexID, r float64) {
	m.vertices[v].Radius = r
}

// Parent returns the vertex v was extruded from, or NoParent.
func (m *Mesh) Parent(v VertexID) VertexID {
	return m.vertices[v].Parent
}

// Lineage returns the chain of vertices from the root down to v.
func (m *Mesh) Lineage(v VertexID) []VertexID {
	var chain []VertexID
	for id := v; id != NoParent; id = m.vertices[id].Parent {
		chain = append(chain, id)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Len returns the number of vertices.
func (m *Mesh) Len() int {
	return len(m.vertices)
}

// Vertices returns the vertices in creation order. The slice is shared
// with the mesh.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Edges returns the edges in creation order. The slice is shared with the
// mesh.
func (m *Mesh) Edges() []Edge {
	return m.edges
}
