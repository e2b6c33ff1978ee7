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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/gui/sdlgl/shaders"
	"github.com/jetsetilly/sphereworld/scene"
)

// overlay is the heads-up display drawn over the scene with Dear ImGui.
type overlay struct {
	context *imgui.Context
	io      imgui.IO

	shader      guiShader
	fontTexture uint32

	vboHandle      uint32
	elementsHandle uint32
}

type guiShader struct {
	shader

	projMtx  int32
	texture  int32
	position int32
	uv       int32
	color    int32
}

func newOverlay() (*overlay, error) {
	ovl := &overlay{
		context: imgui.CreateContext(nil),
	}
	ovl.io = imgui.CurrentIO()

	// the overlay has no settings worth keeping between sessions
	ovl.io.SetIniFilename("")

	err := ovl.shader.createProgram(string(shaders.GUIVertexShader), string(shaders.GUIFragShader))
	if err != nil {
		ovl.context.Destroy()
		return nil, curated.Errorf("overlay: %v", err)
	}
	ovl.shader.projMtx = ovl.shader.uniform("ProjMtx")
	ovl.shader.texture = ovl.shader.uniform("Texture")
	ovl.shader.position = ovl.shader.attrib("Position")
	ovl.shader.uv = ovl.shader.attrib("UV")
	ovl.shader.color = ovl.shader.attrib("Color")

	// create font texture
	atlas := ovl.io.Fonts()
	atlas.AddFontDefault()
	image := atlas.TextureDataAlpha8()

	gl.GenTextures(1, &ovl.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, ovl.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height), 0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	atlas.SetTextureID(imgui.TextureID(ovl.fontTexture))

	gl.GenBuffers(1, &ovl.vboHandle)
	gl.GenBuffers(1, &ovl.elementsHandle)

	return ovl, nil
}

func (ovl *overlay) destroy() {
	if ovl.vboHandle != 0 {
		gl.DeleteBuffers(1, &ovl.vboHandle)
	}
	ovl.vboHandle = 0

	if ovl.elementsHandle != 0 {
		gl.DeleteBuffers(1, &ovl.elementsHandle)
	}
	ovl.elementsHandle = 0

	if ovl.fontTexture != 0 {
		gl.DeleteTextures(1, &ovl.fontTexture)
		ovl.io.Fonts().SetTextureID(0)
		ovl.fontTexture = 0
	}

	ovl.shader.destroy()
	ovl.context.Destroy()
}

// draw builds the overlay window and renders it. The displaySize and
// framebufferSize arguments differ on high DPI displays.
func (ovl *overlay) draw(status scene.Status, fps float32, delta float32, displaySize [2]float32, framebufferSize [2]float32) {
	ovl.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})
	if delta > 0 {
		ovl.io.SetDeltaTime(delta)
	}

	imgui.NewFrame()

	imgui.SetNextWindowPos(imgui.Vec2{X: 10, Y: 10})
	imgui.SetNextWindowBgAlpha(0.5)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoNav
	if imgui.BeginV("SphereWorld", nil, flags) {
		imgui.Text(fmt.Sprintf("%.1f fps", fps))
		imgui.Separator()
		imgui.Text(fmt.Sprintf("camera  %6.2f %6.2f %6.2f", status.Camera[0], status.Camera[1], status.Camera[2]))
		imgui.Text(fmt.Sprintf("heading %5.1f°", status.Heading))
		imgui.Text(fmt.Sprintf("spheres %d", status.Spheres))
		imgui.Text(fmt.Sprintf("display %dx%d", status.Width, status.Height))
	}
	imgui.End()

	imgui.Render()
	ovl.render(displaySize, framebufferSize)
}

// render translates the ImGui draw data to OpenGL3 commands.
func (ovl *overlay) render(displaySize [2]float32, framebufferSize [2]float32) {
	drawData := imgui.RenderedDrawData()

	st := storeGLState()
	defer st.restoreGLState()

	// avoid rendering when minimised. scale coordinates for retina displays
	// (screen coordinates != framebuffer coordinates)
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if (fbWidth <= 0) || (fbHeight <= 0) {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	// alpha-blending enabled, no face culling, no depth testing, scissor
	// enabled, polygon fill
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	projMtx := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}

	gl.UseProgram(ovl.shader.handle)
	gl.Uniform1i(ovl.shader.texture, 0)
	gl.UniformMatrix4fv(ovl.shader.projMtx, 1, false, &projMtx[0][0])
	gl.BindSampler(0, 0)

	// the VAO is recreated every frame
	var vaoHandle uint32
	gl.GenVertexArrays(1, &vaoHandle)
	gl.BindVertexArray(vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, ovl.vboHandle)

	gl.EnableVertexAttribArray(uint32(ovl.shader.uv))
	gl.EnableVertexAttribArray(uint32(ovl.shader.position))
	gl.EnableVertexAttribArray(uint32(ovl.shader.color))

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(uint32(ovl.shader.uv), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.VertexAttribPointerWithOffset(uint32(ovl.shader.position), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(uint32(ovl.shader.color), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := gl.UNSIGNED_SHORT
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, ovl.vboHandle)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ovl.elementsHandle)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.ActiveTexture(gl.TEXTURE0)
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), uint32(drawType), indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	gl.DeleteVertexArrays(1, &vaoHandle)
}

// glState stores GL state with the intention of restoration after a short period.
type glState struct {
	lastActiveTexture      int32
	lastProgram            int32
	lastTexture            int32
	lastSampler            int32
	lastArrayBuffer        int32
	lastElementArrayBuffer int32
	lastVertexArray        int32
	lastPolygonMode        [2]int32
	lastViewport           [4]int32
	lastScissorBox         [4]int32
	lastBlendSrcRgb        int32
	lastBlendDstRgb        int32
	lastBlendSrcAlpha      int32
	lastBlendDstAlpha      int32
	lastBlendEquationRgb   int32
	lastBlendEquationAlpha int32
	lastEnableBlend        bool
	lastEnableCullFace     bool
	lastEnableDepthTest    bool
	lastEnableScissorTest  bool
}

// storeGLState is the best way of initialising an instance of glState.
func storeGLState() *glState {
	st := &glState{}
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &st.lastActiveTexture)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.lastTexture)
	gl.GetIntegerv(gl.SAMPLER_BINDING, &st.lastSampler)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.lastArrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &st.lastElementArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.lastVertexArray)
	gl.GetIntegerv(gl.POLYGON_MODE, &st.lastPolygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &st.lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.lastScissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &st.lastBlendSrcRgb)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &st.lastBlendDstRgb)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.lastBlendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.lastBlendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &st.lastBlendEquationRgb)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &st.lastBlendEquationAlpha)
	st.lastEnableBlend = gl.IsEnabled(gl.BLEND)
	st.lastEnableCullFace = gl.IsEnabled(gl.CULL_FACE)
	st.lastEnableDepthTest = gl.IsEnabled(gl.DEPTH_TEST)
	st.lastEnableScissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

// restoreGLState previously store glState.
func (st *glState) restoreGLState() {
	gl.UseProgram(uint32(st.lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.lastTexture))
	gl.BindSampler(0, uint32(st.lastSampler))
	gl.ActiveTexture(uint32(st.lastActiveTexture))
	gl.BindVertexArray(uint32(st.lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.lastArrayBuffer))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(st.lastElementArrayBuffer))
	gl.BlendEquationSeparate(uint32(st.lastBlendEquationRgb), uint32(st.lastBlendEquationAlpha))
	gl.BlendFuncSeparate(uint32(st.lastBlendSrcRgb), uint32(st.lastBlendDstRgb), uint32(st.lastBlendSrcAlpha), uint32(st.lastBlendDstAlpha))
	setCapability(gl.BLEND, st.lastEnableBlend)
	setCapability(gl.CULL_FACE, st.lastEnableCullFace)
	setCapability(gl.DEPTH_TEST, st.lastEnableDepthTest)
	setCapability(gl.SCISSOR_TEST, st.lastEnableScissorTest)
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(st.lastPolygonMode[0]))
	gl.Viewport(st.lastViewport[0], st.lastViewport[1], st.lastViewport[2], st.lastViewport[3])
	gl.Scissor(st.lastScissorBox[0], st.lastScissorBox[1], st.lastScissorBox[2], st.lastScissorBox[3])
}

func setCapability(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
