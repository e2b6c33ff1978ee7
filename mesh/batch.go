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
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is the way the vertices of a batch are assembled.
type Primitive int

// List of valid Primitive values.
const (
	Triangles Primitive = iota
	TriangleFan
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle fan"
	}
	return "unknown primitive"
}

// Batch is a complete mesh. The Normals and TexCoords slices are the same
// length as the Positions slice. If Indices is not empty then the batch is
// drawn by index.
type Batch struct {
	Primitive Primitive
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32
}

// Indexed returns true if the batch is drawn by index.
func (b *Batch) Indexed() bool {
	return len(b.Indices) > 0
}

// VertexCount returns the number of unique vertices in the batch.
func (b *Batch) VertexCount() int {
	return len(b.Positions)
}

// ElementCount returns the number of vertices that will be submitted when the
// batch is drawn.
func (b *Batch) ElementCount() int {
	if b.Indexed() {
		return len(b.Indices)
	}
	return len(b.Positions)
}

func (b *Batch) String() string {
	if b.Indexed() {
		return fmt.Sprintf("%s: %d vertices, %d indices", b.Primitive, b.VertexCount(), len(b.Indices))
	}
	return fmt.Sprintf("%s: %d vertices", b.Primitive, b.VertexCount())
}
