package export

import (
	"math"
	"strings"
	"testing"

	"github.com/driftpeak/terracarve/internal/terrain"
)

func TestExtractNothingAboveSeaLevel(t *testing.T) {
	g := terrain.NewFlat(terrain.SeaFloor)
	if m, ok := Extract(g); ok || m != nil {
		t.Error("fully submerged grid should yield no result")
	}
}

func TestExtractFullSheet(t *testing.T) {
	g := terrain.NewFlat(100)
	m, ok := Extract(g)
	if !ok {
		t.Fatal("expected a mesh")
	}
	// Every cell is case 15; dedup leaves exactly the grid's vertices.
	want := terrain.VertsX * terrain.VertsZ
	if len(m.Vertices) != want {
		t.Errorf("vertex count = %d, want %d", len(m.Vertices), want)
	}
	wantTris := terrain.Width * terrain.Depth * 2
	if len(m.Indices) != wantTris*3 {
		t.Errorf("index count = %d, want %d", len(m.Indices), wantTris*3)
	}
}

func TestExtractFlatSheetNormalsPointUp(t *testing.T) {
	g := terrain.NewFlat(50)
	m, ok := Extract(g)
	if !ok {
		t.Fatal("expected a mesh")
	}
	for i, v := range m.Vertices {
		if math.Abs(float64(v.Normal[1])-1) > 1e-5 {
			t.Fatalf("vertex %d normal = %v, want +Y", i, v.Normal)
		}
	}
}

// island raises a square patch of vertices above sea level.
func island(x0, z0, x1, z1 int, h float64) *terrain.Grid {
	g := terrain.NewFlat(terrain.SeaFloor)
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			g.Height[terrain.Index(x, z)] = h
		}
	}
	return g.Recolor()
}

func TestExtractIslandCoastlineAtSeaLevel(t *testing.T) {
	g := island(100, 100, 110, 110, 80)
	m, ok := Extract(g)
	if !ok {
		t.Fatal("expected a mesh")
	}

	coast := 0
	for _, v := range m.Vertices {
		switch {
		case float64(v.Position[1]) == terrain.SeaLevel:
			coast++
		case float64(v.Position[1]) == 80:
		default:
			t.Fatalf("unexpected vertex height %v", v.Position[1])
		}
	}
	if coast == 0 {
		t.Error("island should have interpolated coastline vertices at sea level")
	}
}

func TestExtractIslandInterpolatesCrossing(t *testing.T) {
	// Single land column: inland height 100, submerged neighbors at -100,
	// so the crossing sits exactly halfway along each boundary edge.
	g := terrain.NewFlat(-100)
	g.Height[terrain.Index(50, 50)] = 100
	m, ok := Extract(g)
	if !ok {
		t.Fatal("expected a mesh")
	}

	land := g.WorldPos(50, 50)
	east := g.WorldPos(51, 50)
	wantX := float32((land.X() + east.X()) / 2)
	found := false
	for _, v := range m.Vertices {
		if v.Position[1] == 0 && math.Abs(float64(v.Position[0]-wantX)) < 1e-3 &&
			math.Abs(float64(v.Position[2]-float32(land.Z()))) < 1e-3 {
			found = true
		}
	}
	if !found {
		t.Error("expected a crossing vertex halfway along the east edge")
	}
}

func TestExtractDeduplicatesSharedVertices(t *testing.T) {
	g := terrain.NewFlat(10)
	m, _ := Extract(g)

	seen := make(map[[3]float32]bool)
	for _, v := range m.Vertices {
		if seen[v.Position] {
			t.Fatalf("duplicate vertex at %v", v.Position)
		}
		seen[v.Position] = true
	}
}

func TestExtractSaddleEmitsBothCorners(t *testing.T) {
	// Diagonal land pair inside one cell: corners (60,60) and (61,61)
	// above, (61,60) and (60,61) below. Case 5/10 territory.
	g := terrain.NewFlat(-100)
	g.Height[terrain.Index(60, 60)] = 100
	g.Height[terrain.Index(61, 61)] = 100

	m, ok := Extract(g)
	if !ok {
		t.Fatal("expected a mesh")
	}
	// Two disconnected corner triangles per saddle resolution; both
	// land corners must appear in the output.
	p0 := g.WorldPos(60, 60)
	p1 := g.WorldPos(61, 61)
	found0, found1 := false, false
	for _, v := range m.Vertices {
		if v.Position[1] == 100 {
			if math.Abs(float64(v.Position[0])-p0.X()) < 1e-3 && math.Abs(float64(v.Position[2])-p0.Z()) < 1e-3 {
				found0 = true
			}
			if math.Abs(float64(v.Position[0])-p1.X()) < 1e-3 && math.Abs(float64(v.Position[2])-p1.Z()) < 1e-3 {
				found1 = true
			}
		}
	}
	if !found0 || !found1 {
		t.Error("saddle case should emit triangles for both diagonal land corners")
	}
}

func TestWriteOBJ(t *testing.T) {
	g := island(100, 100, 104, 104, 60)
	m, ok := Extract(g)
	if !ok {
		t.Fatal("expected a mesh")
	}

	var sb strings.Builder
	if err := WriteOBJ(&sb, m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := sb.String()

	vCount := strings.Count(out, "\nv ") + btoi(strings.HasPrefix(out, "v "))
	vnCount := strings.Count(out, "\nvn ")
	fCount := strings.Count(out, "\nf ")
	if vCount != len(m.Vertices) {
		t.Errorf("OBJ has %d v records, want %d", vCount, len(m.Vertices))
	}
	if vnCount != len(m.Vertices) {
		t.Errorf("OBJ has %d vn records, want %d", vnCount, len(m.Vertices))
	}
	if fCount != len(m.Indices)/3 {
		t.Errorf("OBJ has %d f records, want %d", fCount, len(m.Indices)/3)
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
