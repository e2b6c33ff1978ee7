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

package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/ftrvxmtrx/tga"
	"github.com/jetsetilly/sphereworld/curated"
)

// LoadError is the sentinel pattern for errors returned by Load().
const LoadError = "texture: %v"

// UnsupportedFormat is the pattern for files with an unrecognised extension.
const UnsupportedFormat = "unsupported image format (%s)"

// the tga package registers itself with image.Decode() with an empty magic
// string, which matches every file. decoders are chosen by file extension
var decoders = map[string]func(io.Reader) (image.Image, error){
	".tga":  tga.Decode,
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
}

// Load reads and decodes the named image file. TGA, PNG and JPEG files are
// supported. The returned image is RGBA and flipped vertically.
func Load(filename string) (*image.RGBA, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	decode, ok := decoders[ext]
	if !ok {
		return nil, curated.Errorf(LoadError, curated.Errorf(UnsupportedFormat, filepath.Base(filename)))
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, curated.Errorf(LoadError, curated.Errorf("%s: %v", filepath.Base(filename), err))
	}

	if img.Bounds().Empty() {
		return nil, curated.Errorf(LoadError, curated.Errorf("%s: empty image", filepath.Base(filename)))
	}

	return transform.FlipV(clone.AsRGBA(img)), nil
}

// Placeholder returns a 1x1 white image. Used in place of a texture that
// cannot be loaded.
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
