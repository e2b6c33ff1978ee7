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

// Package scene is SphereWorld itself. It owns the camera, the positions of
// the spheres, the geometry and the description of the textures, and it
// decides what is drawn each frame.
//
// The scene does not call a graphics API directly. Instead, the Render() and
// Reshape() functions issue commands to an implementation of the Device
// interface. The GL renderer in the gui/sdlgl package is the real
// implementation.
//
// Each frame is drawn in three passes. The first pass draws the spheres
// mirrored in the floor. The second pass draws the floor, blended over the
// mirrored spheres. The final pass draws the spheres the right way up.
package scene
