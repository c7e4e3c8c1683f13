// Package editor orchestrates live sculpting: it owns the current grid,
// routes pointer events through the brush engine, keeps the chunk
// meshes in sync and commits finished strokes to the history.
package editor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/driftpeak/terracarve/internal/brush"
	"github.com/driftpeak/terracarve/internal/chunks"
	"github.com/driftpeak/terracarve/internal/export"
	"github.com/driftpeak/terracarve/internal/history"
	"github.com/driftpeak/terracarve/internal/palette"
	"github.com/driftpeak/terracarve/internal/picking"
	"github.com/driftpeak/terracarve/internal/procgen"
	"github.com/driftpeak/terracarve/internal/terrain"
)

// Session is the single-threaded editing state between the input layer
// and the terrain core. All methods run on the render/input loop; the
// grid snapshots it hands out are immutable.
type Session struct {
	live   *terrain.Grid
	hist   *history.History
	chunks *chunks.Set
	gen    *procgen.Generator
	log    *zap.Logger

	tool     brush.Tool
	settings brush.Settings
	strength float64

	paintColor   *[3]float64
	texture      *palette.Texture
	textureAngle float64
	textureScale float64
	textureBlend float64

	// Stroke state: painting spans pointer-down to pointer-up, and
	// target holds the height sampled once at stroke start for the
	// height-clamping tools.
	painting bool
	target   *float64
	dirty    bool
}

// Config seeds a new session.
type Config struct {
	Initial   *terrain.Grid // nil starts at the sea floor
	Seed      int64
	BrushSize float64
	Strength  float64
	Logger    *zap.Logger
}

// NewSession creates a session, pushes the initial grid as the first
// history entry and fills the chunk meshes.
func NewSession(cfg Config) *Session {
	if cfg.Initial == nil {
		cfg.Initial = terrain.NewFlat(terrain.SeaFloor)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &Session{
		live:     cfg.Initial,
		hist:     history.New(history.DefaultCapacity),
		chunks:   chunks.NewSet(),
		gen:      procgen.New(cfg.Seed),
		log:      cfg.Logger,
		tool:     brush.Raise,
		settings: brush.Settings{Size: cfg.BrushSize},
		strength: cfg.Strength,
	}
	s.hist.Push(s.live)
	s.chunks.Sync(s.live)
	return s
}

// Grid returns the current live snapshot.
func (s *Session) Grid() *terrain.Grid { return s.live }

// Chunks returns the renderable chunk set, always in sync with Grid.
func (s *Session) Chunks() *chunks.Set { return s.chunks }

// SetTool selects the active tool. Changing tools mid-stroke is not
// possible because control inputs are disabled while painting.
func (s *Session) SetTool(t brush.Tool) { s.tool = t }

// Tool returns the active tool.
func (s *Session) Tool() brush.Tool { return s.tool }

// SetBrushSize sets the brush diameter in world units.
func (s *Session) SetBrushSize(size float64) { s.settings.Size = size }

// SetStrength sets the tool strength in [0,1].
func (s *Session) SetStrength(v float64) { s.strength = v }

// SetPaintColor selects a solid paint color (linear RGB) and clears any
// texture selection.
func (s *Session) SetPaintColor(c [3]float64) {
	s.paintColor = &c
	s.texture = nil
}

// SetTexture selects a paint texture with its tiling parameters and
// clears any color selection.
func (s *Session) SetTexture(t *palette.Texture, angle, scale, blend float64) {
	s.texture = t
	s.textureAngle = angle
	s.textureScale = scale
	s.textureBlend = blend
	s.paintColor = nil
}

// PointerDown starts a stroke at the hit point. Flatten and Plane
// sample their target height here, once, so repeated applications
// converge instead of drifting.
func (s *Session) PointerDown(p mgl64.Vec3) {
	s.painting = true
	s.dirty = false
	if s.tool == brush.Flatten || s.tool == brush.Plane {
		h := s.live.SampleHeight(p.X(), p.Z())
		s.target = &h
	}
	s.apply(p)
}

// PointerMove applies the brush at the new hit point while a stroke is
// active. Events outside a stroke are ignored.
func (s *Session) PointerMove(p mgl64.Vec3) {
	if !s.painting {
		return
	}
	s.apply(p)
}

// PointerUp ends the stroke wherever the pointer is: the stroke state
// is cleared unconditionally and the live grid, if it changed, is
// committed as one history entry.
func (s *Session) PointerUp() {
	if !s.painting {
		return
	}
	s.painting = false
	s.target = nil
	if s.dirty {
		s.hist.Push(s.live)
		s.log.Debug("stroke committed",
			zap.Stringer("tool", s.tool),
			zap.Int("historyLen", s.hist.Len()))
	}
	s.dirty = false
}

func (s *Session) apply(p mgl64.Vec3) {
	out, ok := brush.Apply(s.live, p, s.tool, s.settings, brush.Options{
		Strength:     s.strength,
		Target:       s.target,
		PaintColor:   s.paintColor,
		Texture:      s.texture,
		TextureAngle: s.textureAngle,
		TextureScale: s.textureScale,
		TextureBlend: s.textureBlend,
	})
	if !ok {
		// Missing option for this tool; silently leave state alone.
		return
	}
	s.live = out
	s.dirty = true
	s.chunks.Sync(s.live)
}

// Undo steps back one committed state. No-op at the oldest entry.
func (s *Session) Undo() bool {
	g, ok := s.hist.Undo()
	if !ok {
		return false
	}
	s.live = g
	s.chunks.Sync(s.live)
	return true
}

// Redo steps forward one committed state. No-op at the newest entry.
func (s *Session) Redo() bool {
	g, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.live = g
	s.chunks.Sync(s.live)
	return true
}

// CanUndo reports whether Undo would change state.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether Redo would change state.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Generate replaces the terrain from procedural parameters. Generation
// is all-or-nothing: on any error the current grid stays untouched.
func (s *Session) Generate(p procgen.Params) error {
	g, err := s.gen.Generate(p)
	if err != nil {
		return fmt.Errorf("generating terrain: %w", err)
	}
	s.live = g
	s.hist.Push(s.live)
	s.chunks.Sync(s.live)
	s.log.Info("terrain generated",
		zap.Int("octaves", p.Base.Octaves),
		zap.Int("features", len(p.Features)))
	return nil
}

// Export extracts the above-sea-level surface of the current grid.
// It reports false when there is nothing to export.
func (s *Session) Export() (*export.Mesh, bool) {
	return export.Extract(s.live)
}

// Pick intersects a ray with the live terrain.
func (s *Session) Pick(origin, direction mgl64.Vec3) (mgl64.Vec3, bool) {
	if l := direction.Len(); l > 0 {
		direction = direction.Mul(1 / l)
	}
	r := picking.Ray{Origin: origin, Direction: direction}
	return r.IntersectHeightfield(s.live)
}
