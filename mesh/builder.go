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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/sphereworld/curated"
)

// BuilderError is the sentinel pattern for all errors returned by Builder.
const BuilderError = "mesh builder: %v"

// Builder creates a non-indexed Batch one vertex at a time. The number of
// vertices must be declared when building begins.
//
// The normal and texture coordinate are sticky. They apply to every
// subsequent vertex until they are changed.
type Builder struct {
	building bool
	expected int
	batch    *Batch

	normal   mgl32.Vec3
	texCoord mgl32.Vec2
}

// Begin starts a new batch of the specified primitive and vertex count.
func (bld *Builder) Begin(prim Primitive, count int) error {
	if bld.building {
		return curated.Errorf(BuilderError, "batch already begun")
	}
	if count <= 0 {
		return curated.Errorf(BuilderError, "vertex count must be positive")
	}

	bld.building = true
	bld.expected = count
	bld.normal = mgl32.Vec3{}
	bld.texCoord = mgl32.Vec2{}
	bld.batch = &Batch{
		Primitive: prim,
		Positions: make([]mgl32.Vec3, 0, count),
		Normals:   make([]mgl32.Vec3, 0, count),
		TexCoords: make([]mgl32.Vec2, 0, count),
	}

	return nil
}

// Normal sets the normal for subsequent vertices.
func (bld *Builder) Normal(x, y, z float32) {
	bld.normal = mgl32.Vec3{x, y, z}
}

// TexCoord sets the texture coordinate for subsequent vertices.
func (bld *Builder) TexCoord(s, t float32) {
	bld.texCoord = mgl32.Vec2{s, t}
}

// Vertex adds a vertex to the batch.
func (bld *Builder) Vertex(x, y, z float32) error {
	if !bld.building {
		return curated.Errorf(BuilderError, "batch not begun")
	}
	if len(bld.batch.Positions) >= bld.expected {
		return curated.Errorf(BuilderError, "too many vertices")
	}

	bld.batch.Positions = append(bld.batch.Positions, mgl32.Vec3{x, y, z})
	bld.batch.Normals = append(bld.batch.Normals, bld.normal)
	bld.batch.TexCoords = append(bld.batch.TexCoords, bld.texCoord)

	return nil
}

// End completes the batch. The number of vertices added must equal the number
// declared in the call to Begin().
func (bld *Builder) End() (*Batch, error) {
	if !bld.building {
		return nil, curated.Errorf(BuilderError, "batch not begun")
	}
	bld.building = false

	if len(bld.batch.Positions) != bld.expected {
		return nil, curated.Errorf(BuilderError, "too few vertices")
	}

	b := bld.batch
	bld.batch = nil
	return b, nil
}
