package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	markerLength   = 0.75
)

var (
	axisX = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawEditorGrid draws the XZ grid with major lines every gridMajorStep units and
// the three world axes through the origin.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
	drawAxes(rl.NewVector3(0, 0, 0), gridExtent, true)
}

// drawAxes draws X/Y/Z lines of half-length n through center. With both set the
// lines run through center in both directions, otherwise only the positive half.
func drawAxes(center rl.Vector3, n float32, both bool) {
	from := func(v rl.Vector3) rl.Vector3 {
		if both {
			return rl.Vector3Subtract(center, v)
		}
		return center
	}
	dx, dy, dz := rl.NewVector3(n, 0, 0), rl.NewVector3(0, n, 0), rl.NewVector3(0, 0, n)
	rl.DrawLine3D(from(dx), rl.Vector3Add(center, dx), axisX)
	rl.DrawLine3D(from(dy), rl.Vector3Add(center, dy), axisY)
	rl.DrawLine3D(from(dz), rl.Vector3Add(center, dz), axisZ)
}
