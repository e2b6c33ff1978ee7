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

// Package sdlgl is the graphical front end for SphereWorld. It opens an SDL
// window with an OpenGL 3.2 core context, implements the scene.Device
// interface with OpenGL and runs the event loop.
//
// All functions in this package must be called from the main thread. The
// SdlGL type implements the GuiCreator interface used by the main package to
// service the window on that thread.
//
// Key bindings:
//
//	Up/Down          move the camera forwards and backwards
//	Left/Right       turn the camera
//	Shift + arrows   move the central group of spheres
//	F1               show or hide the heads-up display
//	F12              save a screenshot to the working directory
//	Escape           quit
package sdlgl
