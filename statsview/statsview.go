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

// Package statsview runs a web server that displays runtime statistics
// (memory, goroutines, GC pauses) of the running program. It is useful for
// checking that the frame loop is not allocating memory every frame.
//
// Underlying functionality provided by "github.com/go-echarts/statsview".
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/sphereworld/logger"
)

// Address of the statsview server.
const Address = "localhost:12650"

const url = "/debug/statsview"

// Launch the statsview server in its own goroutine. The URL of the server is
// written to output.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		if err := mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "server ended: %v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)
}
