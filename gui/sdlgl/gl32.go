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

package sdlgl

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/logger"
	"github.com/jetsetilly/sphereworld/mesh"
	"github.com/jetsetilly/sphereworld/scene"
	"github.com/jetsetilly/sphereworld/texture"
)

type gl32Mesh struct {
	vao      uint32
	buffers  [3]uint32
	elements uint32
	mode     uint32
	count    int32
}

// gl32 implements the scene.Device interface.
type gl32 struct {
	meshes   [scene.NumMeshes]gl32Mesh
	textures [scene.NumTextures]uint32
	shaders  map[scene.Shader]stockShader

	// the shader selected by UseShader(). nil if no shader is selected
	current stockShader
}

func newGL32() *gl32 {
	return &gl32{
		shaders: make(map[scene.Shader]stockShader),
	}
}

// start initialises the GL bindings and creates the stock shaders. The GL
// context must be current.
func (rnd *gl32) start() error {
	err := gl.Init()
	if err != nil {
		return curated.Errorf("gl32: %v", err)
	}

	logger.Logf(logger.Allow, "gl32", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl32", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl32", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rnd.shaders[scene.ShaderTexturePointLightDiffuse], err = newPointLightDiffuseShader()
	if err != nil {
		return curated.Errorf("gl32: %v", err)
	}
	rnd.shaders[scene.ShaderTextureModulate], err = newModulateShader()
	if err != nil {
		return curated.Errorf("gl32: %v", err)
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)

	return nil
}

// upload copies the scene's geometry and textures to the GPU.
func (rnd *gl32) upload(scn *scene.Scene) {
	for id := scene.MeshID(0); id < scene.NumMeshes; id++ {
		rnd.meshes[id] = uploadMesh(scn.Mesh(id))
	}
	for id := scene.TextureID(0); id < scene.NumTextures; id++ {
		rnd.textures[id] = uploadTexture(scn.Texture(id))
	}
}

func uploadMesh(b *mesh.Batch) gl32Mesh {
	var m gl32Mesh

	switch b.Primitive {
	case mesh.TriangleFan:
		m.mode = gl.TRIANGLE_FAN
	default:
		m.mode = gl.TRIANGLES
	}
	m.count = int32(b.ElementCount())

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.buffers)), &m.buffers[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, m.buffers[attribPosition])
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Positions)*3*4, gl.Ptr(&b.Positions[0][0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(attribPosition)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.buffers[attribNormal])
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Normals)*3*4, gl.Ptr(&b.Normals[0][0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(attribNormal)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.buffers[attribTexCoord])
	gl.BufferData(gl.ARRAY_BUFFER, len(b.TexCoords)*2*4, gl.Ptr(&b.TexCoords[0][0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(attribTexCoord)

	if b.Indexed() {
		gl.GenBuffers(1, &m.elements)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.elements)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(&b.Indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	return m
}

func uploadTexture(spec texture.Spec) uint32 {
	img, err := texture.Load(spec.Filename)
	if err != nil {
		logger.Log(logger.Allow, "texture", err)
		img = texture.Placeholder()
	} else {
		logger.Logf(logger.Allow, "texture", "%s: %dx%d", spec, img.Bounds().Dx(), img.Bounds().Dy())
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	wrap := int32(gl.REPEAT)
	if spec.Wrap == texture.ClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(spec.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(spec.MagFilter))

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.COMPRESSED_RGB,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if spec.MinFilter.IsMipmap() {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	return id
}

func glFilter(f texture.Filter) int32 {
	switch f {
	case texture.Nearest:
		return gl.NEAREST
	case texture.Linear:
		return gl.LINEAR
	case texture.NearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case texture.LinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case texture.NearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case texture.LinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.LINEAR
}

func (rnd *gl32) destroy() {
	for i := range rnd.meshes {
		m := &rnd.meshes[i]
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
			gl.DeleteBuffers(int32(len(m.buffers)), &m.buffers[0])
			if m.elements != 0 {
				gl.DeleteBuffers(1, &m.elements)
			}
		}
		*m = gl32Mesh{}
	}

	for i := range rnd.textures {
		if rnd.textures[i] != 0 {
			gl.DeleteTextures(1, &rnd.textures[i])
			rnd.textures[i] = 0
		}
	}

	for _, sh := range rnd.shaders {
		sh.destroy()
	}
	clear(rnd.shaders)
	rnd.current = nil
}

// Clear implements the scene.Device interface.
func (rnd *gl32) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport implements the scene.Device interface.
func (rnd *gl32) Viewport(width int32, height int32) {
	gl.Viewport(0, 0, width, height)
}

// SetFrontFace implements the scene.Device interface.
func (rnd *gl32) SetFrontFace(clockwise bool) {
	if clockwise {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
}

// SetBlend implements the scene.Device interface.
func (rnd *gl32) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// BindTexture implements the scene.Device interface.
func (rnd *gl32) BindTexture(id scene.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.textures[id])
}

// UseShader implements the scene.Device interface.
func (rnd *gl32) UseShader(shader scene.Shader, params scene.ShaderParams) {
	sh, ok := rnd.shaders[shader]
	if !ok {
		logger.Logf(logger.Allow, "gl32", "no shader program for %s", shader)
		rnd.current = nil
		return
	}
	sh.setUniforms(params)
	rnd.current = sh
}

// Draw implements the scene.Device interface.
func (rnd *gl32) Draw(id scene.MeshID) {
	if rnd.current == nil {
		return
	}

	m := rnd.meshes[id]
	gl.BindVertexArray(m.vao)
	if m.elements != 0 {
		gl.DrawElementsWithOffset(m.mode, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}
