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

import "fmt"

// Filter is a texture sampling filter.
type Filter int

// List of valid Filter values.
const (
	Nearest Filter = iota
	Linear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case NearestMipmapNearest:
		return "nearest mipmap nearest"
	case LinearMipmapNearest:
		return "linear mipmap nearest"
	case NearestMipmapLinear:
		return "nearest mipmap linear"
	case LinearMipmapLinear:
		return "linear mipmap linear"
	}
	return "unknown filter"
}

// IsMipmap returns true if the filter samples from mipmaps. Mipmaps must be
// generated for a texture that uses such a filter.
func (f Filter) IsMipmap() bool {
	switch f {
	case NearestMipmapNearest, LinearMipmapNearest, NearestMipmapLinear, LinearMipmapLinear:
		return true
	}
	return false
}

// Wrap is the texture wrapping mode.
type Wrap int

// List of valid Wrap values.
const (
	Repeat Wrap = iota
	ClampToEdge
)

func (w Wrap) String() string {
	switch w {
	case Repeat:
		return "repeat"
	case ClampToEdge:
		return "clamp to edge"
	}
	return "unknown wrap"
}

// Spec describes a texture: the file it is loaded from and how it is sampled.
type Spec struct {
	Filename  string
	MinFilter Filter
	MagFilter Filter
	Wrap      Wrap
}

func (s Spec) String() string {
	return fmt.Sprintf("%s (min: %s, mag: %s, wrap: %s)", s.Filename, s.MinFilter, s.MagFilter, s.Wrap)
}
