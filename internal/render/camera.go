package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	dragSpeed = 0.01
	zoomStep  = 0.1
	maxPitch  = math32.Pi/2 - 0.01
)

// Orbit is a camera circling the origin at Distance, looking at it.
type Orbit struct {
	Yaw      float32
	Pitch    float32
	Distance float32

	MinDistance float32
	MaxDistance float32
	FovY        float32
}

// NewOrbit returns a camera at distance, slightly above the horizon.
func NewOrbit(distance float32) *Orbit {
	if distance <= 0 {
		distance = 5
	}
	return &Orbit{
		Pitch:       0.35,
		Distance:    distance,
		MinDistance: distance / 10,
		MaxDistance: distance * 10,
		FovY:        mgl32.DegToRad(45),
	}
}

// Drag rotates the camera by a mouse movement in pixels. Pitch is clamped so
// the camera never flips over the poles.
func (o *Orbit) Drag(dx, dy float32) {
	o.Yaw -= dx * dragSpeed
	o.Pitch = mgl32.Clamp(o.Pitch+dy*dragSpeed, -maxPitch, maxPitch)
}

// Zoom moves the camera in (positive steps) or out, within its limits.
func (o *Orbit) Zoom(steps float32) {
	d := o.Distance * math32.Pow(1-zoomStep, steps)
	o.Distance = mgl32.Clamp(d, o.MinDistance, o.MaxDistance)
}

// Eye returns the camera position.
func (o *Orbit) Eye() mgl32.Vec3 {
	cp := math32.Cos(o.Pitch)
	return mgl32.Vec3{
		o.Distance * cp * math32.Sin(o.Yaw),
		o.Distance * math32.Sin(o.Pitch),
		o.Distance * cp * math32.Cos(o.Yaw),
	}
}

// View returns the view matrix.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (o *Orbit) Projection(aspect float32) mgl32.Mat4 {
	near := o.MinDistance / 100
	return mgl32.Perspective(o.FovY, aspect, near, o.MaxDistance*4)
}

// Projector maps world points to screen pixels for one frame.
type Projector struct {
	modelView  mgl32.Mat4
	projection mgl32.Mat4
	mvp        mgl32.Mat4
	w, h       int
}

// Projector prepares screen projection for a w*h target with the given
// model transform.
func (o *Orbit) Projector(model mgl32.Mat4, w, h int) Projector {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	mv := o.View().Mul4(model)
	proj := o.Projection(aspect)
	return Projector{modelView: mv, projection: proj, mvp: proj.Mul4(mv), w: w, h: h}
}

// Project returns the screen position of v with y growing downwards. ok is
// false for points behind the camera or outside the depth range.
func (p Projector) Project(v mgl32.Vec3) (x, y float32, ok bool) {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	win := mgl32.Project(v, p.modelView, p.projection, 0, 0, p.w, p.h)
	if win.Z() < 0 || win.Z() > 1 {
		return 0, 0, false
	}
	return win.X(), float32(p.h) - win.Y(), true
}
