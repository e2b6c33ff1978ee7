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
	"github.com/go-gl/mathgl/mgl32/matstack"
	"github.com/jetsetilly/sphereworld/curated"
)

// Sentinel error patterns.
const (
	StackOverflow  = "matrix stack: overflow (maximum depth %d)"
	StackUnderflow = "matrix stack: underflow"
)

// DefaultStackDepth is the maximum depth of a matrix stack created with
// NewMatrixStack() and a depth of zero.
const DefaultStackDepth = 64

// MatrixStack is a stack of 4x4 matrices used to compose transforms. The top
// of the stack is the current matrix. All transform functions post-multiply
// the current matrix.
type MatrixStack struct {
	stack    *matstack.MatStack
	maxDepth int
}

// NewMatrixStack is the preferred method of initialisation for the
// MatrixStack type. The stack starts with a single identity matrix.
func NewMatrixStack(maxDepth int) *MatrixStack {
	if maxDepth <= 0 {
		maxDepth = DefaultStackDepth
	}
	return &MatrixStack{
		stack:    matstack.NewMatStack(),
		maxDepth: maxDepth,
	}
}

// Depth returns the number of matrices on the stack. Never less than one.
func (s *MatrixStack) Depth() int {
	return len(*s.stack)
}

// Top returns the current matrix.
func (s *MatrixStack) Top() mgl32.Mat4 {
	return s.stack.Peek()
}

// LoadIdentity replaces the current matrix with the identity matrix.
func (s *MatrixStack) LoadIdentity() {
	s.stack.LoadIdent()
}

// Load replaces the current matrix.
func (s *MatrixStack) Load(m mgl32.Mat4) {
	s.stack.Load(m)
}

// Push duplicates the current matrix.
func (s *MatrixStack) Push() error {
	if s.Depth() >= s.maxDepth {
		return curated.Errorf(StackOverflow, s.maxDepth)
	}
	s.stack.Push()
	return nil
}

// PushWith pushes the specified matrix, making it the current matrix.
func (s *MatrixStack) PushWith(m mgl32.Mat4) error {
	if err := s.Push(); err != nil {
		return err
	}
	s.stack.Load(m)
	return nil
}

// Pop discards the current matrix. The last matrix on the stack cannot be
// popped.
func (s *MatrixStack) Pop() error {
	if s.Depth() <= 1 {
		return curated.Errorf(StackUnderflow)
	}
	return s.stack.Pop()
}

// MultMatrix post-multiplies the current matrix by m.
func (s *MatrixStack) MultMatrix(m mgl32.Mat4) {
	s.stack.RightMul(m)
}

// Translate post-multiplies the current matrix by a translation.
func (s *MatrixStack) Translate(x, y, z float32) {
	s.stack.RightMul(mgl32.Translate3D(x, y, z))
}

// Rotate post-multiplies the current matrix by a rotation. The angle is in
// degrees.
func (s *MatrixStack) Rotate(angle float32, x, y, z float32) {
	s.stack.RightMul(mgl32.HomogRotate3D(mgl32.DegToRad(angle), mgl32.Vec3{x, y, z}.Normalize()))
}

// Scale post-multiplies the current matrix by a scaling matrix.
func (s *MatrixStack) Scale(x, y, z float32) {
	s.stack.RightMul(mgl32.Scale3D(x, y, z))
}
