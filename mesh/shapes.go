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

package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MakeSphere tessellates a sphere of the given radius centred on the origin.
// The poles lie on the Z axis. Texture coordinates wrap once around the
// sphere from s=0 to s=1 and run from t=1 at the +Z pole to t=0 at the -Z
// pole.
//
// The resulting batch has slices*stacks*6 indices and (slices+1)*(stacks+1)
// vertices.
func MakeSphere(radius float32, slices int, stacks int) *Batch {
	drho := math32.Pi / float32(stacks)
	dtheta := 2.0 * math32.Pi / float32(slices)
	ds := 1.0 / float32(slices)
	dt := 1.0 / float32(stacks)
	t := float32(1.0)

	tb := NewTriangleBuilder()

	for i := 0; i < stacks; i++ {
		rho := float32(i) * drho
		srho := math32.Sin(rho)
		crho := math32.Cos(rho)
		srhodrho := math32.Sin(rho + drho)
		crhodrho := math32.Cos(rho + drho)

		s := float32(0.0)

		var pos [4]mgl32.Vec3
		var norm [4]mgl32.Vec3
		var tex [4]mgl32.Vec2

		for j := 0; j < slices; j++ {
			// first column of the quad
			theta := float32(j) * dtheta
			stheta := -math32.Sin(theta)
			ctheta := math32.Cos(theta)

			norm[0] = mgl32.Vec3{stheta * srho, ctheta * srho, crho}
			tex[0] = mgl32.Vec2{s, t}
			norm[1] = mgl32.Vec3{stheta * srhodrho, ctheta * srhodrho, crhodrho}
			tex[1] = mgl32.Vec2{s, t - dt}

			// second column of the quad. the final column meets the first
			theta = 0.0
			if j+1 != slices {
				theta = float32(j+1) * dtheta
			}
			stheta = -math32.Sin(theta)
			ctheta = math32.Cos(theta)

			s += ds

			norm[2] = mgl32.Vec3{stheta * srho, ctheta * srho, crho}
			tex[2] = mgl32.Vec2{s, t}
			norm[3] = mgl32.Vec3{stheta * srhodrho, ctheta * srhodrho, crhodrho}
			tex[3] = mgl32.Vec2{s, t - dt}

			for k := range pos {
				pos[k] = norm[k].Mul(radius)
			}

			tb.AddTriangle(
				[3]mgl32.Vec3{pos[0], pos[1], pos[2]},
				[3]mgl32.Vec3{norm[0], norm[1], norm[2]},
				[3]mgl32.Vec2{tex[0], tex[1], tex[2]},
			)
			tb.AddTriangle(
				[3]mgl32.Vec3{pos[1], pos[3], pos[2]},
				[3]mgl32.Vec3{norm[1], norm[3], norm[2]},
				[3]mgl32.Vec2{tex[1], tex[3], tex[2]},
			)
		}

		t -= dt
	}

	return tb.End()
}

// MakeFloor creates a square in the XZ plane at height y, drawn as a triangle
// fan. The texture repeats texRepeat times along each edge. The front face is
// the upper face.
func MakeFloor(halfSize float32, y float32, texRepeat float32) (*Batch, error) {
	var bld Builder

	if err := bld.Begin(TriangleFan, 4); err != nil {
		return nil, err
	}

	bld.Normal(0, 1, 0)

	corners := []struct {
		s, t float32
		x, z float32
	}{
		{s: 0, t: 0, x: -halfSize, z: halfSize},
		{s: texRepeat, t: 0, x: halfSize, z: halfSize},
		{s: texRepeat, t: texRepeat, x: halfSize, z: -halfSize},
		{s: 0, t: texRepeat, x: -halfSize, z: -halfSize},
	}

	for _, c := range corners {
		bld.TexCoord(c.s, c.t)
		if err := bld.Vertex(c.x, y, c.z); err != nil {
			return nil, err
		}
	}

	return bld.End()
}
