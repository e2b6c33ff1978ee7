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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/prefs"
	"github.com/jetsetilly/sphereworld/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndFloat(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("scene.spheres", &i))
	test.ExpectSuccess(t, dsk.Add("scene.fov", &f))

	test.ExpectSuccess(t, i.Set("50"))
	test.ExpectSuccess(t, f.Set(35))
	test.ExpectFailure(t, i.Set("---"))
	test.ExpectFailure(t, i.Set(1.0))
	test.ExpectFailure(t, f.Set("wide"))

	test.ExpectEquality(t, i.Get().(int), 50)
	test.ExpectEquality(t, f.Get().(float64), 35.0)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "scene.fov :: 35.000\nscene.spheres :: 50\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &a))
	err = dsk.Add("key", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("sphereworld.windowsize", v))

	w = 800
	h = 600
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "sphereworld.windowsize :: 800,600\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)
}

// write a bool and then a string from a different prefs.Disk instance. the
// second save must not clobber the first.
func TestSharedFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("scene.fov", &v))

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidPrefs))
}

func TestHookPost(t *testing.T) {
	var fov float64

	var v prefs.Float
	v.SetHookPost(func(value prefs.Value) error {
		fov = value.(float64)
		return nil
	})

	test.ExpectSuccess(t, v.Set("45.5"))
	test.ExpectEquality(t, fov, 45.5)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fov prefs.Float
	var vsync prefs.Bool
	test.ExpectSuccess(t, dsk.Add("scene.fov", &fov))
	test.ExpectSuccess(t, dsk.Add("sphereworld.vsync", &vsync))
	test.ExpectSuccess(t, fov.Set(35))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("scene.fov::60; unknown::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, fov.Get().(float64), 60.0)

	// the unused entry is returned when the stack is popped
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")
}

func TestCommandLineOverrideNotSaved(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fov prefs.Float
	var step prefs.Float
	test.ExpectSuccess(t, dsk.Add("scene.fov", &fov))
	test.ExpectSuccess(t, dsk.Add("scene.linearStep", &step))
	test.ExpectSuccess(t, fov.Set(35))
	test.ExpectSuccess(t, step.Set(0.1))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("scene.fov::20")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, fov.Get().(float64), 20.0)

	// values not taken from the command line are still saved
	test.ExpectSuccess(t, step.Set(0.5))
	test.DemandSuccess(t, dsk.Save())

	other, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var otherFov prefs.Float
	var otherStep prefs.Float
	test.ExpectSuccess(t, other.Add("scene.fov", &otherFov))
	test.ExpectSuccess(t, other.Add("scene.linearStep", &otherStep))
	test.DemandSuccess(t, other.Load())
	test.ExpectEquality(t, otherFov.Get().(float64), 35.0)
	test.ExpectEquality(t, otherStep.Get().(float64), 0.5)

	// a load without the command line value makes the key saveable again
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, fov.Get().(float64), 35.0)
	test.ExpectSuccess(t, fov.Set(50))
	test.DemandSuccess(t, dsk.Save())
	test.DemandSuccess(t, other.Load())
	test.ExpectEquality(t, otherFov.Get().(float64), 50.0)
}
