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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf() and are differentiated by the pattern
// string used to create them, rather than by the formatted message.
//
//	const LoadError = "texture: %v"
//
//	err := curated.Errorf(LoadError, "file not found")
//	if curated.Is(err, LoadError) {
//		...
//	}
//
// The Has() function checks whether a pattern occurs anywhere in an error
// chain. Curated errors that wrap another error (any value that is itself an
// error) expose it through Unwrap() so they cooperate with the errors package
// in the standard library.
//
// Error messages are normalised so that duplicate adjacent parts, separated by
// ": ", are removed. This means that a function can wrap an error with the
// same prefix that a lower level function has already used without the prefix
// appearing twice in the final message:
//
//	scene: scene: texture missing
//
// becomes
//
//	scene: texture missing
package curated
