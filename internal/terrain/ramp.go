package terrain

// Elevation thresholds for the height/color ramp bands.
const (
	RockLevel = 350.0
	SnowLevel = 700.0
)

// Ramp band colors in linear RGB.
var (
	seabedColor = [3]float64{0.76, 0.70, 0.50}
	landColor   = [3]float64{0.13, 0.55, 0.13}
	rockColor   = [3]float64{0.42, 0.40, 0.38}
	snowColor   = [3]float64{0.95, 0.95, 0.97}
)

// RampColor maps an elevation to a linear RGB color using four bands:
// seabed below sea level, land blending to rock, rock blending to snow,
// and solid snow above the snow line. The same ramp recolors vertices
// after every height edit and after procedural generation.
func RampColor(h float64) (r, g, b float64) {
	switch {
	case h < SeaLevel:
		return seabedColor[0], seabedColor[1], seabedColor[2]
	case h < RockLevel:
		t := (h - SeaLevel) / (RockLevel - SeaLevel)
		return lerp3(landColor, rockColor, t)
	case h < SnowLevel:
		t := (h - RockLevel) / (SnowLevel - RockLevel)
		return lerp3(rockColor, snowColor, t)
	default:
		return snowColor[0], snowColor[1], snowColor[2]
	}
}

func lerp3(a, b [3]float64, t float64) (x, y, z float64) {
	return a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t
}
