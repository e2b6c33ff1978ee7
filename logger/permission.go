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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. Most log
// requests in SphereWorld come from places where logging is always
// appropriate.
var Allow Permission = allow{}

// Quiet is a Permission that can be toggled. Used by the frame loop so that
// per-frame diagnostics can be silenced.
type Quiet struct {
	Silent bool
}

// AllowLogging implements the Permission interface.
func (q *Quiet) AllowLogging() bool {
	return !q.Silent
}
