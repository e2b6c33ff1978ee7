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

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TextureID identifies one of the scene's textures.
type TextureID int

// List of valid TextureID values.
const (
	TexMarble TextureID = iota
	TexMars
	TexMoon
	NumTextures
)

// MeshID identifies one of the scene's meshes.
type MeshID int

// List of valid MeshID values.
const (
	MeshFloor MeshID = iota
	MeshBigSphere
	MeshSmallSphere
	NumMeshes
)

func (id MeshID) String() string {
	switch id {
	case MeshFloor:
		return "floor"
	case MeshBigSphere:
		return "big sphere"
	case MeshSmallSphere:
		return "small sphere"
	}
	return "unknown mesh"
}

// Shader identifies one of the stock shaders.
type Shader int

// List of valid Shader values.
const (
	// samples texture unit zero and applies diffuse lighting from a single
	// point light. uses the ModelView, Projection, Normal, LightPos and
	// Color fields of ShaderParams
	ShaderTexturePointLightDiffuse Shader = iota

	// samples texture unit zero and multiplies the result by a colour. uses
	// the MVP and Color fields of ShaderParams
	ShaderTextureModulate
)

func (s Shader) String() string {
	switch s {
	case ShaderTexturePointLightDiffuse:
		return "texture point light diffuse"
	case ShaderTextureModulate:
		return "texture modulate"
	}
	return "unknown shader"
}

// ShaderParams are the uniform values for a shader. Not all fields are used
// by every shader.
type ShaderParams struct {
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4
	MVP        mgl32.Mat4
	Normal     mgl32.Mat3

	// light position in eye space
	LightPos mgl32.Vec3

	Color mgl32.Vec4
}

// Device is the interface to the graphics hardware.
type Device interface {
	// clear colour and depth buffers
	Clear()

	// set the viewport to the specified size
	Viewport(width int32, height int32)

	// SetFrontFace(true) makes clockwise polygons front facing.
	// SetFrontFace(false) makes counter-clockwise polygons front facing,
	// which is the default
	SetFrontFace(clockwise bool)

	// alpha blending with source alpha and one minus source alpha
	SetBlend(enabled bool)

	BindTexture(id TextureID)
	UseShader(shader Shader, params ShaderParams)
	Draw(id MeshID)
}
