package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/driftpeak/terracarve/internal/brush"
	"github.com/driftpeak/terracarve/internal/editor"
	"github.com/driftpeak/terracarve/internal/procgen"
)

// Script is a recorded sequence of sculpt strokes replayed through an
// editor session. It is the headless stand-in for interactive input.
type Script struct {
	Strokes []Stroke `yaml:"strokes"`
}

// Stroke is one pointer-down..pointer-up gesture. Points are planar
// world coordinates; the surface height under each point is looked up
// at replay time, like a pick from a camera ray would.
type Stroke struct {
	Tool     string       `yaml:"tool"`
	Size     float64      `yaml:"size,omitempty"`     // 0 keeps the session brush size
	Strength float64      `yaml:"strength,omitempty"` // 0 keeps the session strength
	Color    *[3]float64  `yaml:"color,omitempty"`    // linear RGB, paint tool only
	Repeat   int          `yaml:"repeat,omitempty"`   // extra applications at the last point
	Points   []StrokePath `yaml:"points"`
}

// StrokePath is one planar waypoint of a stroke.
type StrokePath struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// loadScript reads and validates a sculpt script.
func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i, st := range s.Strokes {
		if _, ok := brush.ParseTool(st.Tool); !ok {
			return nil, fmt.Errorf("stroke %d: unknown tool %q", i, st.Tool)
		}
		if len(st.Points) == 0 {
			return nil, fmt.Errorf("stroke %d: no points", i)
		}
	}
	return &s, nil
}

// Replay runs every stroke against the session. Each stroke becomes one
// history entry, exactly as an interactive gesture would.
func (s *Script) Replay(session *editor.Session) error {
	for i, st := range s.Strokes {
		tool, ok := brush.ParseTool(st.Tool)
		if !ok {
			return fmt.Errorf("stroke %d: unknown tool %q", i, st.Tool)
		}
		session.SetTool(tool)
		if st.Size > 0 {
			session.SetBrushSize(st.Size)
		}
		if st.Strength > 0 {
			session.SetStrength(st.Strength)
		}
		if st.Color != nil {
			session.SetPaintColor(*st.Color)
		}

		session.PointerDown(s.hitPoint(session, st.Points[0]))
		for _, p := range st.Points[1:] {
			session.PointerMove(s.hitPoint(session, p))
		}
		last := st.Points[len(st.Points)-1]
		for r := 0; r < st.Repeat; r++ {
			session.PointerMove(s.hitPoint(session, last))
		}
		session.PointerUp()
	}
	return nil
}

// hitPoint lifts a planar waypoint onto the current surface.
func (s *Script) hitPoint(session *editor.Session, p StrokePath) mgl64.Vec3 {
	y := session.Grid().SampleHeight(p.X, p.Z)
	return mgl64.Vec3{p.X, y, p.Z}
}

// loadParams reads a generator parameter document.
func loadParams(path string) (procgen.Params, error) {
	var p procgen.Params
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("loading generator params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing generator params: %w", err)
	}
	return p, nil
}
