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

// Package mesh builds the geometry drawn by the scene. Geometry is built once
// on the CPU into a Batch and is never modified afterwards. Uploading a Batch
// to the GPU is the responsibility of the renderer.
//
// There are two ways of building a batch. The Builder type accepts vertices
// one at a time, with the normal and texture coordinate for each vertex set
// beforehand. The TriangleBuilder type accepts whole triangles and welds
// vertices that are shared between triangles, producing an indexed batch.
//
// MakeSphere() and MakeFloor() build the two shapes used in the scene.
package mesh
