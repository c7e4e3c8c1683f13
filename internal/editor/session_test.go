package editor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/driftpeak/terracarve/internal/brush"
	"github.com/driftpeak/terracarve/internal/procgen"
	"github.com/driftpeak/terracarve/internal/terrain"
)

var origin = mgl64.Vec3{0, 0, 0}

func newTestSession() *Session {
	return NewSession(Config{
		Seed:      1,
		BrushSize: 2000,
		Strength:  0.5,
	})
}

func TestStrokeCommitsOnceOnRelease(t *testing.T) {
	s := newTestSession()
	before := s.Grid()

	s.PointerDown(origin)
	s.PointerMove(origin)
	s.PointerMove(origin)
	if s.CanUndo() {
		t.Error("no history commit should exist mid-stroke")
	}
	s.PointerUp()

	if !s.CanUndo() {
		t.Fatal("stroke should commit one history entry on release")
	}
	if s.Grid() == before {
		t.Error("live grid should be a new snapshot after the stroke")
	}

	// Undo restores exactly the pre-stroke snapshot.
	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if s.Grid() != before {
		t.Error("undo should restore the committed pre-stroke grid")
	}
}

func TestMoveWithoutStrokeIgnored(t *testing.T) {
	s := newTestSession()
	before := s.Grid()
	s.PointerMove(origin)
	if s.Grid() != before {
		t.Error("pointer move outside a stroke must not edit")
	}
}

func TestFlattenTargetFixedForStroke(t *testing.T) {
	s := newTestSession()

	// Build a slope so stroke start and later moves sample different
	// heights.
	g := terrain.NewFlat(0)
	for z := 0; z <= terrain.Depth; z++ {
		for x := 0; x <= terrain.Width; x++ {
			g.Height[terrain.Index(x, z)] = float64(x)
		}
	}
	s.live = g.Recolor()
	s.chunks.Sync(s.live)

	s.SetTool(brush.Flatten)
	start := s.live.SampleHeight(0, 0)
	s.PointerDown(origin)
	if s.target == nil || *s.target != start {
		t.Fatalf("target = %v, want sampled %v", s.target, start)
	}

	// Moving elsewhere must not resample the target.
	s.PointerMove(mgl64.Vec3{3000, 0, 0})
	if *s.target != start {
		t.Error("target drifted mid-stroke")
	}
	s.PointerUp()
	if s.target != nil {
		t.Error("target should be cleared on release")
	}
}

func TestFlattenApproachesTargetOverMoves(t *testing.T) {
	s := newTestSession()
	g := terrain.NewFlat(200)
	// Dip at the center so the sampled target is below the surroundings.
	ci := terrain.Index(terrain.Width/2, terrain.Depth/2)
	g.Height[ci] = 50
	s.live = g.Recolor()
	s.chunks.Sync(s.live)

	s.SetTool(brush.Flatten)
	s.PointerDown(origin)
	target := *s.target

	prev := math.Abs(s.live.Height[ci+4] - target)
	for n := 0; n < 15; n++ {
		s.PointerMove(origin)
		diff := math.Abs(s.live.Height[ci+4] - target)
		if diff > prev+1e-9 {
			t.Fatalf("height diverging from target: %v > %v", diff, prev)
		}
		prev = diff
	}
	s.PointerUp()
}

func TestPaintWithoutSelectionIsNoOp(t *testing.T) {
	s := newTestSession()
	s.SetTool(brush.Paint)
	before := s.Grid()

	s.PointerDown(origin)
	s.PointerUp()

	if s.Grid() != before {
		t.Error("paint without a color or texture must not edit")
	}
	if s.CanUndo() {
		t.Error("no-op stroke must not commit history")
	}
}

func TestRedoDestroyedByNewStroke(t *testing.T) {
	s := newTestSession()

	s.PointerDown(origin)
	s.PointerUp()
	s.PointerDown(origin)
	s.PointerUp()

	s.Undo()
	if !s.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	s.PointerDown(origin)
	s.PointerUp()
	if s.CanRedo() {
		t.Error("new stroke should destroy the redo future")
	}
}

func TestGenerateCommitsAndSyncs(t *testing.T) {
	s := newTestSession()
	if err := s.Generate(procgen.DefaultParams()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !s.CanUndo() {
		t.Error("generation should be undoable")
	}

	// Chunk full-res level must match the new grid.
	c := s.Chunks().Chunks[0]
	lm := c.Levels[0]
	if lm.Positions[1] != float32(s.Grid().Height[terrain.Index(0, 0)]) {
		t.Error("chunks out of sync after generation")
	}
}

func TestGenerateFailureLeavesGrid(t *testing.T) {
	s := newTestSession()
	before := s.Grid()

	p := procgen.DefaultParams()
	p.Base.Octaves = 0
	if err := s.Generate(p); err == nil {
		t.Fatal("expected error")
	}
	if s.Grid() != before {
		t.Error("failed generation must leave the grid untouched")
	}
}

func TestExportEmptySeaFloor(t *testing.T) {
	s := newTestSession()
	if _, ok := s.Export(); ok {
		t.Error("sea-floor-only terrain should export nothing")
	}
}

func TestExportAfterRaise(t *testing.T) {
	s := newTestSession()
	s.SetStrength(1)
	// Raise repeatedly until land appears above sea level.
	for n := 0; n < 10; n++ {
		s.PointerDown(origin)
		s.PointerUp()
	}
	if s.Grid().Height[terrain.Index(terrain.Width/2, terrain.Depth/2)] < terrain.SeaLevel {
		t.Skip("not enough elevation for land; tuning changed")
	}
	if _, ok := s.Export(); !ok {
		t.Error("expected exportable land after raising")
	}
}

func TestPickReturnsBrushPoint(t *testing.T) {
	s := newTestSession()
	p, ok := s.Pick(mgl64.Vec3{0, 1000, 0}, mgl64.Vec3{0, -1, 0})
	if !ok {
		t.Fatal("expected terrain hit")
	}
	if math.Abs(p.Y()-terrain.SeaFloor) > 0.01 {
		t.Errorf("pick height = %v, want sea floor", p.Y())
	}
}
