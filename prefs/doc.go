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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are added to a Disk instance with Add() and are then
// saved and loaded with Save() and Load(). The file is a simple text file
// beginning with WarningBoilerPlate, followed by one "key :: value" line per
// preference, sorted by key.
//
// The types Bool, Int, Float and String wrap a single live value and can be
// declared as the zero value. A callback can be attached with SetHookPost(),
// which is useful for propagating a change to the part of the program that
// uses the value. Generic is used for values that are composed of more than
// one live value, such as a window size.
//
// Values can be overridden from the command line by pushing a prefs string
// with PushCommandLineStack() before calling Load().
package prefs
