package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteOBJ serializes the mesh as Wavefront OBJ. Vertex colors use the
// widely supported xyzrgb extension on the v record; normals go out as
// vn records referenced per face.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# terracarve export")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n",
			v.Position[0], v.Position[1], v.Position[2],
			v.Color[0], v.Color[1], v.Color[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		// OBJ indices are one-based.
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}

// WriteOBJFile writes the mesh to a file, creating or truncating it.
func WriteOBJFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
