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
	"image"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/logger"
	"github.com/jetsetilly/sphereworld/paths"
)

// screenshot captures the back buffer and saves it as a PNG file. Encoding
// and saving happens in a separate goroutine.
type screenshot struct {
	requested bool

	// the result of the most recent save is sent over this channel. it is
	// buffered so the saving goroutine never blocks
	finish chan error

	// a save is in progress
	saving bool
}

func newScreenshot() *screenshot {
	return &screenshot{
		finish: make(chan error, 1),
	}
}

// request a screenshot at the end of the next frame.
func (sht *screenshot) request() {
	if sht.saving {
		logger.Log(logger.Allow, "screenshot", "previous screenshot still in progress")
		return
	}
	sht.requested = true
}

// process should be called after the frame has been drawn and before the
// buffers are swapped.
func (sht *screenshot) process(width int32, height int32) {
	select {
	case err := <-sht.finish:
		sht.saving = false
		if err != nil {
			logger.Log(logger.Allow, "screenshot", err)
		}
	default:
	}

	if !sht.requested || width <= 0 || height <= 0 {
		return
	}
	sht.requested = false

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	filename := paths.UniqueFilename("sphereworld", "png", time.Now())

	sht.saving = true
	go func() {
		// GL rows are bottom to top
		err := imgio.Save(filename, transform.FlipV(img), imgio.PNGEncoder())
		if err != nil {
			sht.finish <- curated.Errorf("screenshot: %v", err)
			return
		}
		logger.Logf(logger.Allow, "screenshot", "saved to %s", filename)
		sht.finish <- nil
	}()
}

// wait for any save in progress to complete.
func (sht *screenshot) destroy() {
	if sht.saving {
		if err := <-sht.finish; err != nil {
			logger.Log(logger.Allow, "screenshot", err)
		}
		sht.saving = false
	}
}
