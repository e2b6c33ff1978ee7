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

package shaders

import _ "embed"

//go:embed "point_light_diffuse.vert"
var PointLightDiffuseVertexShader []byte

//go:embed "point_light_diffuse.frag"
var PointLightDiffuseFragShader []byte

//go:embed "modulate.vert"
var ModulateVertexShader []byte

//go:embed "modulate.frag"
var ModulateFragShader []byte

//go:embed "gui.vert"
var GUIVertexShader []byte

//go:embed "gui.frag"
var GUIFragShader []byte
