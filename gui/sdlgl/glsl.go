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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/sphereworld/curated"
)

// fixed attribute locations shared by the stock shaders and the mesh vertex
// arrays
const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
)

type shader struct {
	handle uint32
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

func (sh *shader) uniform(name string) int32 {
	return gl.GetUniformLocation(sh.handle, gl.Str(name+"\x00"))
}

func (sh *shader) attrib(name string) int32 {
	return gl.GetAttribLocation(sh.handle, gl.Str(name+"\x00"))
}

// compile and link shader programs. attribute locations are bound to the
// stock locations if the attribute exists in the vertex program
func (sh *shader) createProgram(vertProgram string, fragProgram string) error {
	sh.destroy()

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	// individual shaders are not needed once the program has been linked
	defer gl.DeleteShader(fragHandle)
	defer gl.DeleteShader(vertHandle)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := getShaderCompileError(vertHandle); log != "" {
		sh.destroy()
		return curated.Errorf("glsl: vertex shader: %v", log)
	}

	gl.CompileShader(fragHandle)
	if log := getShaderCompileError(fragHandle); log != "" {
		sh.destroy()
		return curated.Errorf("glsl: fragment shader: %v", log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)

	gl.BindAttribLocation(sh.handle, attribPosition, gl.Str("Position\x00"))
	gl.BindAttribLocation(sh.handle, attribNormal, gl.Str("Normal\x00"))
	gl.BindAttribLocation(sh.handle, attribTexCoord, gl.Str("TexCoord\x00"))

	gl.LinkProgram(sh.handle)
	if log := getProgramLinkError(sh.handle); log != "" {
		sh.destroy()
		return curated.Errorf("glsl: link: %v", log)
	}

	return nil
}

// getShaderCompileError returns the most recent error generated
// by the shader compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the log length includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00\n")
		}
		return "unknown compilation error"
	}
	return ""
}

// getProgramLinkError returns the most recent error generated by the linker.
func getProgramLinkError(program uint32) string {
	var isLinked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetProgramInfoLog(program, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00\n")
		}
		return "unknown link error"
	}
	return ""
}
