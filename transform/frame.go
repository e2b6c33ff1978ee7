// This file is part of SphereWorld.
//
// SphereWorld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SphereWorld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SphereWorld.  If not, see <https://www.gnu.org/licenses/>.

package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a position and an orientation in world space. The orientation is
// described by a forward vector and an up vector. The third axis is derived
// from the two when needed.
//
// The zero value is not a valid frame. Use NewFrame().
type Frame struct {
	origin  mgl32.Vec3
	forward mgl32.Vec3
	up      mgl32.Vec3
}

// NewFrame returns a frame at the world origin, looking down the negative Z
// axis with positive Y as up.
func NewFrame() Frame {
	return Frame{
		origin:  mgl32.Vec3{0, 0, 0},
		forward: mgl32.Vec3{0, 0, -1},
		up:      mgl32.Vec3{0, 1, 0},
	}
}

// SetOrigin moves the frame to the specified position.
func (f *Frame) SetOrigin(x, y, z float32) {
	f.origin = mgl32.Vec3{x, y, z}
}

// Origin returns the position of the frame.
func (f Frame) Origin() mgl32.Vec3 {
	return f.origin
}

// Forward returns the forward vector of the frame.
func (f Frame) Forward() mgl32.Vec3 {
	return f.forward
}

// Up returns the up vector of the frame.
func (f Frame) Up() mgl32.Vec3 {
	return f.up
}

// MoveForward moves the frame along its forward vector. A negative delta
// moves the frame backwards.
func (f *Frame) MoveForward(delta float32) {
	f.origin = f.origin.Add(f.forward.Mul(delta))
}

// MoveUp moves the frame along its up vector.
func (f *Frame) MoveUp(delta float32) {
	f.origin = f.origin.Add(f.up.Mul(delta))
}

// MoveRight moves the frame along the axis perpendicular to both the up and
// forward vectors.
func (f *Frame) MoveRight(delta float32) {
	f.origin = f.origin.Add(f.up.Cross(f.forward).Mul(delta))
}

// RotateWorld rotates the orientation of the frame about an axis in world
// space. The angle is in radians. The origin is unchanged.
func (f *Frame) RotateWorld(angle float32, x, y, z float32) {
	m := mgl32.HomogRotate3D(angle, mgl32.Vec3{x, y, z}.Normalize())
	f.up = m.Mul4x1(f.up.Vec4(0)).Vec3()
	f.forward = m.Mul4x1(f.forward.Vec4(0)).Vec3()
}

// RotateLocalY rotates the frame about its own up vector. The angle is in
// radians.
func (f *Frame) RotateLocalY(angle float32) {
	m := mgl32.HomogRotate3D(angle, f.up.Normalize())
	f.forward = m.Mul4x1(f.forward.Vec4(0)).Vec3()
}

// Normalize re-orthogonalises the orientation vectors. Repeated rotation
// introduces small errors that accumulate over time.
func (f *Frame) Normalize() {
	cross := f.up.Cross(f.forward)
	f.forward = cross.Cross(f.up).Normalize()
	f.up = f.up.Normalize()
}

// Matrix returns the matrix that transforms from the frame's local space to
// world space.
func (f Frame) Matrix() mgl32.Mat4 {
	x := f.up.Cross(f.forward)
	return mgl32.Mat4FromCols(x.Vec4(0), f.up.Vec4(0), f.forward.Vec4(0), f.origin.Vec4(1))
}

// CameraMatrix returns the matrix that transforms from world space to the
// space of a camera placed at the frame.
func (f Frame) CameraMatrix() mgl32.Mat4 {
	z := f.forward.Mul(-1)
	x := f.up.Cross(z)

	// rows of the rotation are the camera axes
	var m mgl32.Mat4
	m[0], m[4], m[8] = x[0], x[1], x[2]
	m[1], m[5], m[9] = f.up[0], f.up[1], f.up[2]
	m[2], m[6], m[10] = z[0], z[1], z[2]
	m[15] = 1

	return m.Mul4(mgl32.Translate3D(-f.origin[0], -f.origin[1], -f.origin[2]))
}
