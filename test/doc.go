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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions are used when further testing would be
// meaningless if the condition does not hold, and so end the test with
// t.Fatalf().
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. For a bool, success is true. For an error, success is
// nil. An untyped nil is always considered a success because of how errors
// are returned in Go.
//
// ExpectApproximate() is useful for the float32 values produced by the
// transform and mesh packages, where exact equality is not expected.
package test
