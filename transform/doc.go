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

// Package transform contains the small amount of 3D mathematics needed to
// place objects and the camera: a Frame (position and orientation), a
// MatrixStack for composing transforms, and a Frustum for the perspective
// projection.
//
// Matrices and vectors are the types from "github.com/go-gl/mathgl/mgl32".
// Matrices are column major, as expected by OpenGL.
//
// Angles given to Frame functions are in radians. Angles given to
// MatrixStack.Rotate() and Frustum.SetPerspective() are in degrees.
package transform
