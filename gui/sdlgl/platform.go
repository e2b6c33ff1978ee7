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
	"runtime"

	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowTitle   = "OpenGL SphereWorld"
	defaultWidth  = 800
	defaultHeight = 600
)

// list of swap interval values expected by the sdl.GLSetSwapInterval()
// function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext

	// performance counter at the time of the previous frame. used to
	// calculate the delta time for the overlay
	time uint64
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform() (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 3},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_FLAGS, value: sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{attr: sdl.GL_CONTEXT_PROFILE_MASK, value: sdl.GL_CONTEXT_PROFILE_CORE},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
		{attr: sdl.GL_DEPTH_SIZE, value: 24},
		{attr: sdl.GL_RED_SIZE, value: 8},
		{attr: sdl.GL_GREEN_SIZE, value: 8},
		{attr: sdl.GL_BLUE_SIZE, value: 8},
		{attr: sdl.GL_ALPHA_SIZE, value: 8},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		defaultWidth, defaultHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return plt, nil
}

// destroy cleans up the resources.
func (plt *platform) destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}

func (plt *platform) setSwapInterval(vsync bool) {
	i := syncImmediateUpdate
	if vsync {
		i = syncWithVerticalRetrace
	}
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// displaySize returns the dimension of the window in screen coordinates.
func (plt *platform) displaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// framebufferSize returns the dimension of the framebuffer in pixels.
func (plt *platform) framebufferSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// deltaTime returns the number of seconds since the previous call.
func (plt *platform) deltaTime() float32 {
	frequency := sdl.GetPerformanceFrequency()
	currentTime := sdl.GetPerformanceCounter()
	defer func() {
		plt.time = currentTime
	}()
	if plt.time == 0 {
		return 1.0 / 60.0
	}
	return float32(currentTime-plt.time) / float32(frequency)
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
