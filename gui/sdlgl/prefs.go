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

	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/prefs"
)

// Preferences for the window.
type Preferences struct {
	dsk *prefs.Disk

	// synchronise buffer swaps with the vertical retrace
	VSync prefs.Bool

	// show the heads-up display
	Overlay prefs.Bool
}

func (gui *SdlGL) initPrefs(path string) error {
	gui.prefs = &Preferences{}

	var err error

	gui.prefs.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return err
	}

	err = gui.prefs.dsk.Add("sphereworld.windowsize", prefs.NewGeneric(
		func(s string) error {
			var w, h int32
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			if err != nil {
				return err
			}
			if w <= 0 || h <= 0 {
				return curated.Errorf("invalid window size (%s)", s)
			}
			gui.plt.window.SetSize(w, h)
			return nil
		},
		func() string {
			w, h := gui.plt.window.GetSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	))
	if err != nil {
		return err
	}

	err = gui.prefs.dsk.Add("sphereworld.vsync", &gui.prefs.VSync)
	if err != nil {
		return err
	}
	err = gui.prefs.dsk.Add("sphereworld.overlay", &gui.prefs.Overlay)
	if err != nil {
		return err
	}

	// defaults
	_ = gui.prefs.VSync.Set(true)
	_ = gui.prefs.Overlay.Set(false)

	gui.prefs.VSync.SetHookPost(func(v prefs.Value) error {
		gui.plt.setSwapInterval(v.(bool))
		return nil
	})

	// load preferences from disk
	err = gui.prefs.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return err
		}
	}

	return nil
}
