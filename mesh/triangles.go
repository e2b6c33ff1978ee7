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

// vertices closer than this are considered to be the same vertex
const weldEpsilon = 0.00001

// size of the buckets used to find candidates for welding. must be larger
// than weldEpsilon
const bucketSize = 0.001

type bucket struct {
	s, t int
}

// TriangleBuilder creates an indexed Batch from individual triangles.
// Vertices that match an earlier vertex in position, normal and texture
// coordinate are welded together.
type TriangleBuilder struct {
	batch   Batch
	buckets map[bucket][]uint32
}

// NewTriangleBuilder is the preferred method of initialisation for the
// TriangleBuilder type.
func NewTriangleBuilder() *TriangleBuilder {
	return &TriangleBuilder{
		batch: Batch{
			Primitive: Triangles,
		},
		buckets: make(map[bucket][]uint32),
	}
}

func bucketFor(tex mgl32.Vec2) bucket {
	return bucket{
		s: int(math32.Floor(tex[0] / bucketSize)),
		t: int(math32.Floor(tex[1] / bucketSize)),
	}
}

func close3(a, b mgl32.Vec3) bool {
	return math32.Abs(a[0]-b[0]) <= weldEpsilon &&
		math32.Abs(a[1]-b[1]) <= weldEpsilon &&
		math32.Abs(a[2]-b[2]) <= weldEpsilon
}

func close2(a, b mgl32.Vec2) bool {
	return math32.Abs(a[0]-b[0]) <= weldEpsilon &&
		math32.Abs(a[1]-b[1]) <= weldEpsilon
}

// find returns the index of an existing vertex matching the arguments
func (tb *TriangleBuilder) find(pos, norm mgl32.Vec3, tex mgl32.Vec2) (uint32, bool) {
	b := bucketFor(tex)
	for ds := -1; ds <= 1; ds++ {
		for dt := -1; dt <= 1; dt++ {
			for _, idx := range tb.buckets[bucket{s: b.s + ds, t: b.t + dt}] {
				if close3(tb.batch.Positions[idx], pos) &&
					close3(tb.batch.Normals[idx], norm) &&
					close2(tb.batch.TexCoords[idx], tex) {
					return idx, true
				}
			}
		}
	}
	return 0, false
}

// AddTriangle adds a single triangle. Normals are normalised before they are
// stored.
func (tb *TriangleBuilder) AddTriangle(pos [3]mgl32.Vec3, norm [3]mgl32.Vec3, tex [3]mgl32.Vec2) {
	for i := 0; i < 3; i++ {
		n := norm[i].Normalize()

		if idx, ok := tb.find(pos[i], n, tex[i]); ok {
			tb.batch.Indices = append(tb.batch.Indices, idx)
			continue
		}

		idx := uint32(len(tb.batch.Positions))
		tb.batch.Positions = append(tb.batch.Positions, pos[i])
		tb.batch.Normals = append(tb.batch.Normals, n)
		tb.batch.TexCoords = append(tb.batch.TexCoords, tex[i])
		tb.batch.Indices = append(tb.batch.Indices, idx)

		b := bucketFor(tex[i])
		tb.buckets[b] = append(tb.buckets[b], idx)
	}
}

// End returns the completed batch. The TriangleBuilder should not be used
// after End() has been called.
func (tb *TriangleBuilder) End() *Batch {
	b := tb.batch
	tb.buckets = nil
	return &b
}
