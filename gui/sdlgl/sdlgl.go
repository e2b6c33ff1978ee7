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
	"io"

	"github.com/jetsetilly/sphereworld/logger"
	"github.com/jetsetilly/sphereworld/scene"
	"github.com/veandco/go-sdl2/sdl"
)

// SdlGL is the SDL/OpenGL front end for a scene.
type SdlGL struct {
	scn *scene.Scene

	plt    *platform
	rnd    *gl32
	ovl    *overlay
	scrsht *screenshot
	prefs  *Preferences

	// closed when the user has asked to quit
	done chan struct{}
	quit bool

	// frames per second, recalculated every second
	fps        float32
	frames     int
	fpsElapsed float32

	// permission for the once per second frame rate log entry
	frameLog logger.Quiet
}

// NewSdlGL is the preferred method of initialisation for the SdlGL type. The
// window preferences are stored in the named prefs file.
//
// MUST ONLY be called from the main thread.
func NewSdlGL(scn *scene.Scene, prefsFile string) (*SdlGL, error) {
	gui := &SdlGL{
		scn:      scn,
		done:     make(chan struct{}),
		scrsht:   newScreenshot(),
		frameLog: logger.Quiet{Silent: true},
	}

	var err error

	gui.plt, err = newPlatform()
	if err != nil {
		return nil, err
	}

	err = gui.initPrefs(prefsFile)
	if err != nil {
		gui.plt.destroy()
		return nil, err
	}
	gui.plt.setSwapInterval(gui.prefs.VSync.Get().(bool))

	gui.rnd = newGL32()
	err = gui.rnd.start()
	if err != nil {
		gui.rnd.destroy()
		gui.plt.destroy()
		return nil, err
	}
	gui.rnd.upload(scn)

	gui.ovl, err = newOverlay()
	if err != nil {
		gui.rnd.destroy()
		gui.plt.destroy()
		return nil, err
	}

	gui.reshape()
	gui.plt.window.Show()

	return gui, nil
}

// Done returns a channel that is closed when the user asks to quit.
func (gui *SdlGL) Done() <-chan struct{} {
	return gui.done
}

// LogFrameRate adds a log entry for the frame rate once per second.
func (gui *SdlGL) LogFrameRate(log bool) {
	gui.frameLog.Silent = !log
}

// Destroy implements GuiCreator interface. Window preferences are saved.
//
// MUST ONLY be called from the main thread.
func (gui *SdlGL) Destroy(output io.Writer) {
	err := gui.prefs.dsk.Save()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	gui.scrsht.destroy()
	gui.ovl.destroy()
	gui.rnd.destroy()
	gui.plt.destroy()
}

// Service implements GuiCreator interface. Services all pending window events
// and then draws one frame.
//
// MUST ONLY be called from the main thread.
func (gui *SdlGL) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.requestQuit()

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				gui.reshape()
			}

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				gui.serviceKeyboard(ev)
			}
		}
	}

	if gui.quit {
		return
	}

	gui.render()
}

func (gui *SdlGL) requestQuit() {
	if !gui.quit {
		gui.quit = true
		close(gui.done)
	}
}

func (gui *SdlGL) serviceKeyboard(ev *sdl.KeyboardEvent) {
	shift := ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT

	switch ev.Keysym.Sym {
	case sdl.K_UP:
		gui.scn.SpecialKey(scene.KeyUp, shift)
	case sdl.K_DOWN:
		gui.scn.SpecialKey(scene.KeyDown, shift)
	case sdl.K_LEFT:
		gui.scn.SpecialKey(scene.KeyLeft, shift)
	case sdl.K_RIGHT:
		gui.scn.SpecialKey(scene.KeyRight, shift)
	case sdl.K_F1:
		if ev.Repeat == 0 {
			_ = gui.prefs.Overlay.Set(!gui.prefs.Overlay.Get().(bool))
		}
	case sdl.K_F12:
		if ev.Repeat == 0 {
			gui.scrsht.request()
		}
	case sdl.K_ESCAPE:
		gui.requestQuit()
	}
}

// reshape passes the size of the framebuffer to the scene.
func (gui *SdlGL) reshape() {
	w, h := gui.plt.framebufferSize()
	gui.scn.Reshape(gui.rnd, w, h)
	logger.Logf(logger.Allow, "sdlgl", "framebuffer size %dx%d", w, h)
}

func (gui *SdlGL) render() {
	delta := gui.plt.deltaTime()

	err := gui.scn.Render(gui.rnd)
	if err != nil {
		logger.Log(logger.Allow, "sdlgl", err)
	}

	if gui.prefs.Overlay.Get().(bool) {
		w, h := gui.plt.framebufferSize()
		gui.ovl.draw(gui.scn.Status(), gui.fps, delta, gui.plt.displaySize(), [2]float32{float32(w), float32(h)})
	}

	// the overlay is included in the screenshot if it is visible
	gui.scrsht.process(gui.plt.framebufferSize())

	gui.plt.postRender()

	gui.frames++
	gui.fpsElapsed += delta
	if gui.fpsElapsed >= 1.0 {
		gui.fps = float32(gui.frames) / gui.fpsElapsed
		gui.frames = 0
		gui.fpsElapsed = 0
		logger.Logf(&gui.frameLog, "sdlgl", "%.1f fps", gui.fps)
	}
}
