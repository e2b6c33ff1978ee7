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

// Package texture describes the textures used by the scene and loads the
// image data for them. Creating the GPU texture from the loaded image is the
// responsibility of the renderer.
//
// TGA files are decoded with "github.com/ftrvxmtrx/tga". Any other format
// registered with the image package of the standard library is also
// accepted. Loaded images are flipped vertically so that the first row of
// pixel data is the bottom row of the image, which is the order expected by
// OpenGL.
package texture
