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

// Key is one of the keys that control the camera.
type Key int

// List of valid Key values.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	}
	return "unknown key"
}

// SpecialKey moves the camera in response to a key press. Up and down move
// the camera forwards and backwards. Left and right turn the camera about the
// world's Y axis.
//
// If shifted is true then the central group of spheres is moved instead of
// the camera.
func (scn *Scene) SpecialKey(key Key, shifted bool) {
	frame := &scn.camera
	if shifted {
		frame = &scn.object
	}

	linear := asFloat32(&scn.Prefs.LinearStep)
	angular := mgl32.DegToRad(asFloat32(&scn.Prefs.AngularStep))

	switch key {
	case KeyUp:
		frame.MoveForward(linear)
	case KeyDown:
		frame.MoveForward(-linear)
	case KeyLeft:
		frame.RotateWorld(angular, 0, 1, 0)
	case KeyRight:
		frame.RotateWorld(-angular, 0, 1, 0)
	}
}
