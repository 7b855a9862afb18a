package foliage

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Geometry selects the proxy mesh instanced for every leaf.
type Geometry string

const (
	GeometryIcoSphere Geometry = "ico_sphere"
	GeometryCube      Geometry = "cube"
)

// ProxyMesh is a unit-sized polygon mesh. Faces index into Vertices and are
// wound counter-clockwise seen from outside.
type ProxyMesh struct {
	Vertices []math.Vec3
	Faces    [][]int
}

// Mesh returns the unit proxy for g: an icosahedron of radius 1 or a cube
// of edge length 1, both centred on the origin.
func (g Geometry) Mesh() ProxyMesh {
	if g == GeometryCube {
		return cube()
	}
	return icosahedron()
}

func cube() ProxyMesh {
	const h = 0.5
	return ProxyMesh{
		Vertices: []math.Vec3{
			{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
}

func icosahedron() ProxyMesh {
	phi := (1 + gomath.Sqrt(5)) / 2
	raw := []math.Vec3{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	verts := make([]math.Vec3, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize()
	}
	return ProxyMesh{
		Vertices: verts,
		Faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
}
