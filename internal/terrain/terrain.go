// Package terrain holds the authoritative height/color grid and its
// coordinate mapping between grid space and world space.
package terrain

// Grid resolution in segments. The vertex grid is one larger in each
// direction, so a Grid holds (Width+1)*(Depth+1) height samples.
const (
	Width = 256
	Depth = 256

	// VertsX and VertsZ are the vertex counts along each axis.
	VertsX = Width + 1
	VertsZ = Depth + 1
)

// World-space extent of the full terrain, centered on the origin.
const (
	WorldSizeX = 20000.0
	WorldSizeZ = 20000.0
)

// Elevation constants shared by the brush engine, the generator and export.
const (
	// SeaLevel is the isovalue used for coastline extraction and the
	// land/water cutoff for painting.
	SeaLevel = 0.0

	// SeaFloor is the lowest elevation any vertex may take.
	SeaFloor = -50.0

	// MaxElevation is a generous ceiling for the Raise tool; no sane
	// edit reaches it, the clamp only guards against runaway strokes.
	MaxElevation = WorldSizeX
)
