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

package transform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/test"
	"github.com/jetsetilly/sphereworld/transform"
)

const tolerance = 0.0001

func expectVec3(t *testing.T, v mgl32.Vec3, expected mgl32.Vec3) {
	t.Helper()
	for i := range v {
		test.ExpectApproximate(t, v[i], expected[i], tolerance, i)
	}
}

func TestFrameDefaults(t *testing.T) {
	f := transform.NewFrame()
	expectVec3(t, f.Origin(), mgl32.Vec3{0, 0, 0})
	expectVec3(t, f.Forward(), mgl32.Vec3{0, 0, -1})
	expectVec3(t, f.Up(), mgl32.Vec3{0, 1, 0})

	// camera matrix for the default frame is the identity
	test.ExpectEquality(t, f.CameraMatrix().ApproxEqualThreshold(mgl32.Ident4(), tolerance), true)
}

func TestFrameMove(t *testing.T) {
	f := transform.NewFrame()
	f.MoveForward(0.1)
	f.MoveForward(0.1)
	expectVec3(t, f.Origin(), mgl32.Vec3{0, 0, -0.2})

	f.MoveForward(-0.3)
	expectVec3(t, f.Origin(), mgl32.Vec3{0, 0, 0.1})

	f.SetOrigin(0, 0, 0)
	f.MoveUp(1)
	expectVec3(t, f.Origin(), mgl32.Vec3{0, 1, 0})

	// right of a frame looking down -Z with +Y up is -X in this convention
	f.SetOrigin(0, 0, 0)
	f.MoveRight(1)
	expectVec3(t, f.Origin(), mgl32.Vec3{-1, 0, 0})
}

func TestFrameRotateWorld(t *testing.T) {
	f := transform.NewFrame()
	f.SetOrigin(1, 2, 3)

	f.RotateWorld(mgl32.DegToRad(90), 0, 1, 0)
	expectVec3(t, f.Forward(), mgl32.Vec3{-1, 0, 0})
	expectVec3(t, f.Up(), mgl32.Vec3{0, 1, 0})
	expectVec3(t, f.Origin(), mgl32.Vec3{1, 2, 3})

	// a full turn in 5 degree steps returns to the start
	f = transform.NewFrame()
	for i := 0; i < 72; i++ {
		f.RotateWorld(mgl32.DegToRad(5), 0, 1, 0)
	}
	expectVec3(t, f.Forward(), mgl32.Vec3{0, 0, -1})

	// rotation followed by the opposite rotation is the identity
	f = transform.NewFrame()
	f.RotateWorld(mgl32.DegToRad(5), 0, 1, 0)
	f.RotateWorld(mgl32.DegToRad(-5), 0, 1, 0)
	expectVec3(t, f.Forward(), mgl32.Vec3{0, 0, -1})
}

func TestFrameRotateLocalY(t *testing.T) {
	f := transform.NewFrame()
	f.RotateLocalY(mgl32.DegToRad(90))
	expectVec3(t, f.Forward(), mgl32.Vec3{-1, 0, 0})
	expectVec3(t, f.Up(), mgl32.Vec3{0, 1, 0})
}

func TestFrameNormalize(t *testing.T) {
	f := transform.NewFrame()
	for i := 0; i < 1000; i++ {
		f.RotateWorld(0.01, 0.3, 1, 0.2)
	}
	f.Normalize()
	test.ExpectApproximate(t, f.Forward().Len(), 1.0, tolerance)
	test.ExpectApproximate(t, f.Up().Len(), 1.0, tolerance)
	test.ExpectApproximate(t, f.Forward().Dot(f.Up()), 0.0, tolerance)
}

func TestFrameMatrix(t *testing.T) {
	f := transform.NewFrame()
	f.SetOrigin(1, 0, -2)

	// the local origin is placed at the frame's origin
	p := f.Matrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	expectVec3(t, p, mgl32.Vec3{1, 0, -2})

	// a point on the local Z axis lies along the forward vector
	p = f.Matrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1}).Vec3()
	expectVec3(t, p, mgl32.Vec3{1, 0, -3})
}

func TestCameraMatrix(t *testing.T) {
	f := transform.NewFrame()
	f.MoveForward(1)

	// the camera position maps to the eye space origin
	p := f.CameraMatrix().Mul4x1(f.Origin().Vec4(1)).Vec3()
	expectVec3(t, p, mgl32.Vec3{0, 0, 0})

	// a point in front of the camera is on the negative Z axis
	p = f.CameraMatrix().Mul4x1(mgl32.Vec4{0, 0, -5, 1}).Vec3()
	expectVec3(t, p, mgl32.Vec3{0, 0, -4})

	// after turning left by 90 degrees a point to the left is in front
	f = transform.NewFrame()
	f.RotateWorld(mgl32.DegToRad(90), 0, 1, 0)
	p = f.CameraMatrix().Mul4x1(mgl32.Vec4{-3, 0, 0, 1}).Vec3()
	expectVec3(t, p, mgl32.Vec3{0, 0, -3})
}

func TestMatrixStack(t *testing.T) {
	s := transform.NewMatrixStack(0)
	test.ExpectEquality(t, s.Depth(), 1)
	test.ExpectEquality(t, s.Top(), mgl32.Ident4())

	s.Translate(1, 2, 3)
	top := s.Top()
	test.ExpectSuccess(t, s.Push())
	test.ExpectEquality(t, s.Depth(), 2)
	test.ExpectEquality(t, s.Top(), top)

	s.Scale(1, -1, 1)
	test.ExpectInequality(t, s.Top(), top)
	test.ExpectSuccess(t, s.Pop())
	test.ExpectEquality(t, s.Top(), top)

	// transforms post-multiply
	s.LoadIdentity()
	s.Translate(0, 0, -2.5)
	s.Rotate(90, 0, 1, 0)
	p := s.Top().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	expectVec3(t, p, mgl32.Vec3{0, 0, -3.5})

	test.ExpectSuccess(t, s.PushWith(mgl32.Ident4()))
	test.ExpectEquality(t, s.Top(), mgl32.Ident4())
	test.ExpectSuccess(t, s.Pop())
}

func TestMatrixStackLimits(t *testing.T) {
	s := transform.NewMatrixStack(3)

	err := s.Pop()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, transform.StackUnderflow), true)
	test.ExpectEquality(t, s.Depth(), 1)

	s.Translate(1, 0, 0)
	test.ExpectSuccess(t, s.Push())
	test.ExpectSuccess(t, s.Push())
	err = s.Push()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, transform.StackOverflow), true)
	test.ExpectEquality(t, s.Depth(), 3)

	// failed operations leave the stack unchanged
	test.ExpectEquality(t, s.Top(), mgl32.Translate3D(1, 0, 0))
}

func TestPipeline(t *testing.T) {
	var fr transform.Frustum
	fr.SetPerspective(35, 800.0/600.0, 1, 100)
	test.ExpectEquality(t, fr.Projection(), mgl32.Perspective(mgl32.DegToRad(35), 800.0/600.0, 1, 100))

	p := transform.Pipeline{
		ModelView:  transform.NewMatrixStack(0),
		Projection: transform.NewMatrixStack(0),
	}
	p.Projection.Load(fr.Projection())
	p.ModelView.Translate(0, 0, -5)
	test.ExpectEquality(t, p.ModelViewProjection(), fr.Projection().Mul4(mgl32.Translate3D(0, 0, -5)))

	// reflection is kept in the normal matrix
	p.ModelView.LoadIdentity()
	p.ModelView.Scale(1, -1, 1)
	n := p.NormalMatrix()
	expectVec3(t, n.Mul3x1(mgl32.Vec3{0, 1, 0}), mgl32.Vec3{0, -1, 0})

	// uniform scaling is removed
	n = transform.NormalMatrix(mgl32.Scale3D(2, 2, 2))
	expectVec3(t, n.Mul3x1(mgl32.Vec3{1, 0, 0}), mgl32.Vec3{1, 0, 0})
}
