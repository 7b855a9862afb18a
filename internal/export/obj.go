package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/lowpoly-tree/internal/tree"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// WriteOBJ writes trees as Wavefront OBJ. Each tree contributes two
// groups, "<tree> Stem" holding the Stem object (vertices and polyline
// edges) and "<tree> Leaves" holding one object per leaf, so importers see
// the tree as the parent of both. Positions are in world space. Skin radii are not part
// of OBJ and are kept as "# radius <vertex> <value>" comments so importers
// can rebuild the skin.
func WriteOBJ(w io.Writer, trees ...*tree.Tree) error {
	bw := bufio.NewWriter(w)
	ow := &objWriter{w: bw}

	fmt.Fprintln(bw, "# lowpoly-tree")
	for i, t := range trees {
		ow.tree(i, t)
	}

	// bufio.Writer keeps the first write error until Flush.
	return bw.Flush()
}

// objWriter tracks the running vertex index; OBJ indices are global and
// 1-based.
type objWriter struct {
	w      *bufio.Writer
	offset int
}

func (o *objWriter) tree(i int, t *tree.Tree) {
	name := t.Name
	if i > 0 {
		name = fmt.Sprintf("%s.%03d", t.Name, i)
	}
	fmt.Fprintf(o.w, "\n# id %s seed %d\n", t.ID, t.Request.Seed)

	fmt.Fprintf(o.w, "g %s %s\n", name, t.Stem.Name)
	o.stem(t)

	fmt.Fprintf(o.w, "g %s %s\n", name, t.Leaves.Name)
	for _, leaf := range t.Leaves.Leaves {
		proxy := leaf.Geometry.Mesh()
		o.object(leaf.Name, leaf.Material, leaf.Transform(), proxy.Vertices, proxy.Faces)
	}
}

func (o *objWriter) stem(t *tree.Tree) {
	mesh := t.Stem.Mesh

	fmt.Fprintf(o.w, "o %s\n", t.Stem.Name)
	if t.Stem.Material != "" {
		fmt.Fprintf(o.w, "usemtl %s\n", t.Stem.Material)
	}
	for _, v := range mesh.Vertices() {
		o.vertex(t.World.TransformVec3(v.Position))
	}
	for i, v := range mesh.Vertices() {
		fmt.Fprintf(o.w, "# radius %d %.6f\n", o.offset+i+1, v.Radius)
	}
	for _, e := range mesh.Edges() {
		fmt.Fprintf(o.w, "l %d %d\n", o.offset+int(e.From)+1, o.offset+int(e.To)+1)
	}
	o.offset += mesh.Len()
}

func (o *objWriter) object(name, material string, m math.Mat4, verts []math.Vec3, faces [][]int) {
	fmt.Fprintf(o.w, "o %s\n", name)
	if material != "" {
		fmt.Fprintf(o.w, "usemtl %s\n", material)
	}
	for _, v := range verts {
		o.vertex(m.TransformVec3(v))
	}
	for _, f := range faces {
		fmt.Fprint(o.w, "f")
		for _, idx := range f {
			fmt.Fprintf(o.w, " %d", o.offset+idx+1)
		}
		fmt.Fprintln(o.w)
	}
	o.offset += len(verts)
}

func (o *objWriter) vertex(p math.Vec3) {
	fmt.Fprintf(o.w, "v %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
}
