package brush

// Smoothstep is the cubic-Hermite step shared by every tool's falloff
// and by the procedural generator's feature blending: 0 at or before lo,
// 1 at or after hi, C1-continuous in between.
func Smoothstep(lo, hi, v float64) float64 {
	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Falloff is the per-vertex blend weight: 1 at the brush center,
// smoothly down to 0 at the radius.
func Falloff(distance, radius float64) float64 {
	return 1 - Smoothstep(0, radius, distance)
}

// planeFalloff is the two-zone weight used only by the Plane tool: full
// strength inside the core, smooth falloff from core to rim.
func planeFalloff(distance, radius float64) float64 {
	core := radius * planeCoreRatio
	if distance <= core {
		return 1
	}
	return 1 - Smoothstep(core, radius, distance)
}
