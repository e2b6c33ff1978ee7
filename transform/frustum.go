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

// Frustum describes a perspective projection.
type Frustum struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	projection mgl32.Mat4
}

// SetPerspective sets the projection. The field of view is the full vertical
// angle in degrees.
func (f *Frustum) SetPerspective(fov, aspect, near, far float32) {
	f.FOV = fov
	f.Aspect = aspect
	f.Near = near
	f.Far = far
	f.projection = mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}

// Projection returns the projection matrix.
func (f *Frustum) Projection() mgl32.Mat4 {
	return f.projection
}

// Pipeline combines a model-view stack with a projection stack.
type Pipeline struct {
	ModelView  *MatrixStack
	Projection *MatrixStack
}

// ModelViewProjection returns the product of the current projection and
// model-view matrices.
func (p Pipeline) ModelViewProjection() mgl32.Mat4 {
	return p.Projection.Top().Mul4(p.ModelView.Top())
}

// NormalMatrix returns the normal matrix for the current model-view matrix.
func (p Pipeline) NormalMatrix() mgl32.Mat3 {
	return NormalMatrix(p.ModelView.Top())
}

// NormalMatrix extracts the rotation part of m with each column normalised.
// Sufficient for transforming normals when m contains no non-uniform scaling
// other than reflection.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	r := m.Mat3()
	return mgl32.Mat3FromCols(r.Col(0).Normalize(), r.Col(1).Normalize(), r.Col(2).Normalize())
}
