package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/goraster/pkg/math"
)

func TestPerspectiveDivide(t *testing.T) {
	c := New(640, 480, 90)
	// 1/tan(45deg) = 1
	if pd := c.PerspectiveDivide(); gomath.Abs(float64(pd-1)) > 0.0001 {
		t.Errorf("PerspectiveDivide at fov 90 = %v, want 1", pd)
	}
}

func TestAspectRatio(t *testing.T) {
	c := New(1280, 720, 70)
	want := float32(1280.0 / 720.0)
	if ar := c.AspectRatio(); gomath.Abs(float64(ar-want)) > 0.0001 {
		t.Errorf("AspectRatio = %v, want %v", ar, want)
	}
}

func TestNewDefaults(t *testing.T) {
	c := New(640, 480, 70)
	if c.Rotation != math.QuatIdentity() {
		t.Errorf("new camera rotation = %v, want identity", c.Rotation)
	}
	if c.Position != (math.Vec3{}) {
		t.Errorf("new camera position = %v, want origin", c.Position)
	}
}

func TestOrbitCamera_FacesCenter(t *testing.T) {
	orbit := NewOrbitCamera()
	orbit.Center = math.Vec3{X: 1, Y: 2, Z: 3}

	for _, angles := range [][2]float32{{0, 0}, {0.4, 0.0}, {0.7, 1.3}, {-0.5, 2.8}} {
		orbit.RotationX = angles[0]
		orbit.RotationY = angles[1]

		// Identity camera forward is +Z; the orbit rotation must turn
		// it towards the center point.
		forward := orbit.Rotation().Rotate(math.Vec3{Z: 1})
		want := orbit.Center.Sub(orbit.Position()).Normalize()

		if forward.Distance(want) > 0.001 {
			t.Errorf("pitch=%v yaw=%v: forward = %v, want %v", angles[0], angles[1], forward, want)
		}
	}
}

func TestOrbitCamera_ZoomClamped(t *testing.T) {
	orbit := NewOrbitCamera()
	orbit.Distance = 1

	for i := 0; i < 100; i++ {
		orbit.HandleZoom(10)
	}
	if orbit.Distance < orbit.MinDistance {
		t.Errorf("zoom in went below MinDistance: %v", orbit.Distance)
	}

	for i := 0; i < 1000; i++ {
		orbit.HandleZoom(-10)
	}
	if orbit.Distance > orbit.MaxDistance {
		t.Errorf("zoom out exceeded MaxDistance: %v", orbit.Distance)
	}
}

func TestOrbitCamera_DragClampsPitch(t *testing.T) {
	orbit := NewOrbitCamera()
	orbit.HandleDrag(0, 1e6)
	if orbit.RotationX > orbit.MaxPitch {
		t.Errorf("pitch exceeded MaxPitch: %v", orbit.RotationX)
	}
	orbit.HandleDrag(0, -1e6)
	if orbit.RotationX < orbit.MinPitch {
		t.Errorf("pitch below MinPitch: %v", orbit.RotationX)
	}
}

func TestOrbitCamera_FitToBounds(t *testing.T) {
	orbit := NewOrbitCamera()
	orbit.FitToBounds(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

	if orbit.Center != (math.Vec3{}) {
		t.Errorf("center = %v, want origin", orbit.Center)
	}
	if orbit.Distance <= 0 {
		t.Errorf("distance = %v, want > 0", orbit.Distance)
	}
}
