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
	"github.com/jetsetilly/sphereworld/gui/sdlgl/shaders"
	"github.com/jetsetilly/sphereworld/scene"
)

type stockShader interface {
	destroy()
	setUniforms(scene.ShaderParams)
}

type pointLightDiffuseShader struct {
	shader

	modelView  int32
	projection int32
	normal     int32
	lightPos   int32
	color      int32
	texture    int32
}

func newPointLightDiffuseShader() (stockShader, error) {
	sh := &pointLightDiffuseShader{}
	err := sh.createProgram(string(shaders.PointLightDiffuseVertexShader), string(shaders.PointLightDiffuseFragShader))
	if err != nil {
		return nil, err
	}

	sh.modelView = sh.uniform("ModelView")
	sh.projection = sh.uniform("Projection")
	sh.normal = sh.uniform("NormalMatrix")
	sh.lightPos = sh.uniform("LightPos")
	sh.color = sh.uniform("Color")
	sh.texture = sh.uniform("Texture")

	return sh, nil
}

func (sh *pointLightDiffuseShader) setUniforms(p scene.ShaderParams) {
	gl.UseProgram(sh.handle)
	gl.UniformMatrix4fv(sh.modelView, 1, false, &p.ModelView[0])
	gl.UniformMatrix4fv(sh.projection, 1, false, &p.Projection[0])
	gl.UniformMatrix3fv(sh.normal, 1, false, &p.Normal[0])
	gl.Uniform3fv(sh.lightPos, 1, &p.LightPos[0])
	gl.Uniform4fv(sh.color, 1, &p.Color[0])
	gl.Uniform1i(sh.texture, 0)
}

type modulateShader struct {
	shader

	mvp     int32
	color   int32
	texture int32
}

func newModulateShader() (stockShader, error) {
	sh := &modulateShader{}
	err := sh.createProgram(string(shaders.ModulateVertexShader), string(shaders.ModulateFragShader))
	if err != nil {
		return nil, err
	}

	sh.mvp = sh.uniform("MVP")
	sh.color = sh.uniform("Color")
	sh.texture = sh.uniform("Texture")

	return sh, nil
}

func (sh *modulateShader) setUniforms(p scene.ShaderParams) {
	gl.UseProgram(sh.handle)
	gl.UniformMatrix4fv(sh.mvp, 1, false, &p.MVP[0])
	gl.Uniform4fv(sh.color, 1, &p.Color[0])
	gl.Uniform1i(sh.texture, 0)
}
