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

package scene_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/sphereworld/prefs"
	"github.com/jetsetilly/sphereworld/scene"
	"github.com/jetsetilly/sphereworld/test"
	"github.com/jetsetilly/sphereworld/texture"
)

// draw is a single draw command as seen by the recording device
type draw struct {
	mesh      scene.MeshID
	texture   scene.TextureID
	shader    scene.Shader
	params    scene.ShaderParams
	clockwise bool
	blend     bool
}

// recorder implements the scene.Device interface
type recorder struct {
	clears    int
	width     int32
	height    int32
	clockwise bool
	blend     bool
	texture   scene.TextureID
	shader    scene.Shader
	params    scene.ShaderParams
	draws     []draw
}

func (r *recorder) Clear() {
	r.clears++
}

func (r *recorder) Viewport(width int32, height int32) {
	r.width = width
	r.height = height
}

func (r *recorder) SetFrontFace(clockwise bool) {
	r.clockwise = clockwise
}

func (r *recorder) SetBlend(enabled bool) {
	r.blend = enabled
}

func (r *recorder) BindTexture(id scene.TextureID) {
	r.texture = id
}

func (r *recorder) UseShader(shader scene.Shader, params scene.ShaderParams) {
	r.shader = shader
	r.params = params
}

func (r *recorder) Draw(id scene.MeshID) {
	r.draws = append(r.draws, draw{
		mesh:      id,
		texture:   r.texture,
		shader:    r.shader,
		params:    r.params,
		clockwise: r.clockwise,
		blend:     r.blend,
	})
}

// fixedClock returns a clock that starts at an arbitrary time and only
// advances when the returned function is called
func fixedClock() (scene.Clock, func(time.Duration)) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
			return now
		}, func(d time.Duration) {
			now = now.Add(d)
		}
}

func newScene(t *testing.T) (*scene.Scene, func(time.Duration)) {
	t.Helper()

	clock, advance := fixedClock()

	cfg := scene.DefaultConfig()
	cfg.PrefsFile = filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	cfg.Clock = clock

	scn, err := scene.NewScene(cfg)
	test.DemandSuccess(t, err)

	return scn, advance
}

func TestPlacements(t *testing.T) {
	scn, _ := newScene(t)

	p := scn.Placements()
	test.ExpectEquality(t, len(p), scene.DefaultNumSpheres)
	test.ExpectEquality(t, scn.Status().Spheres, scene.DefaultNumSpheres)

	for i, v := range p {
		test.ExpectEquality(t, v[0] >= -20.0001 && v[0] <= 19.9001, true, i)
		test.ExpectEquality(t, v[1], float32(0.0), i)
		test.ExpectEquality(t, v[2] >= -20.0001 && v[2] <= 19.9001, true, i)
	}

	// same seed, same placements
	other, _ := newScene(t)
	q := other.Placements()
	for i := range p {
		test.ExpectEquality(t, p[i], q[i], i)
	}

	// different seed, different placements
	cfg := scene.DefaultConfig()
	cfg.PrefsFile = filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	cfg.Seed = 1000
	cfg.NumSpheres = 10
	different, err := scene.NewScene(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(different.Placements()), 10)
	test.ExpectEquality(t, different.Seed(), int64(1000))

	var same int
	for i, v := range different.Placements() {
		if v == p[i] {
			same++
		}
	}
	test.ExpectInequality(t, same, 10)
}

func TestNegativeSpheres(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.PrefsFile = filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	cfg.NumSpheres = -1
	_, err := scene.NewScene(cfg)
	test.ExpectFailure(t, err)
}

func TestResources(t *testing.T) {
	scn, _ := newScene(t)

	test.ExpectEquality(t, scn.Mesh(scene.MeshBigSphere).VertexCount(), 41*81)
	test.ExpectEquality(t, len(scn.Mesh(scene.MeshBigSphere).Indices), 40*80*6)
	test.ExpectEquality(t, scn.Mesh(scene.MeshSmallSphere).VertexCount(), 27*14)
	test.ExpectEquality(t, scn.Mesh(scene.MeshFloor).VertexCount(), 4)

	test.ExpectEquality(t, filepath.Base(scn.Texture(scene.TexMarble).Filename), "Marble.tga")
	test.ExpectEquality(t, scn.Texture(scene.TexMarble).Wrap, texture.Repeat)
	test.ExpectEquality(t, filepath.Base(scn.Texture(scene.TexMars).Filename), "Marslike.tga")
	test.ExpectEquality(t, scn.Texture(scene.TexMars).Wrap, texture.ClampToEdge)
	test.ExpectEquality(t, filepath.Base(scn.Texture(scene.TexMoon).Filename), "MoonLike.tga")
	test.ExpectEquality(t, scn.Texture(scene.TexMoon).Wrap, texture.ClampToEdge)

	for id := scene.TextureID(0); id < scene.NumTextures; id++ {
		test.ExpectEquality(t, scn.Texture(id).MinFilter, texture.LinearMipmapLinear)
		test.ExpectEquality(t, scn.Texture(id).MagFilter, texture.Linear)
	}
}

func TestRender(t *testing.T) {
	scn, _ := newScene(t)

	var dev recorder
	scn.Reshape(&dev, 800, 600)
	test.DemandSuccess(t, scn.Render(&dev))

	test.ExpectEquality(t, dev.clears, 1)
	test.DemandEquality(t, len(dev.draws), 2*(scene.DefaultNumSpheres+2)+1)

	// device state is restored at the end of the frame
	test.ExpectEquality(t, dev.clockwise, false)
	test.ExpectEquality(t, dev.blend, false)

	half := scene.DefaultNumSpheres + 2

	for i, d := range dev.draws {
		switch {
		case i < half:
			test.ExpectEquality(t, d.clockwise, true, i)
			test.ExpectEquality(t, d.blend, false, i)
			test.ExpectEquality(t, d.shader, scene.ShaderTexturePointLightDiffuse, i)
		case i == half:
			test.ExpectEquality(t, d.mesh, scene.MeshFloor)
			test.ExpectEquality(t, d.texture, scene.TexMarble)
			test.ExpectEquality(t, d.shader, scene.ShaderTextureModulate)
			test.ExpectEquality(t, d.clockwise, false)
			test.ExpectEquality(t, d.blend, true)
			test.ExpectEquality(t, d.params.Color, mgl32.Vec4{1, 1, 0, 0.75})
		default:
			test.ExpectEquality(t, d.clockwise, false, i)
			test.ExpectEquality(t, d.blend, false, i)
			test.ExpectEquality(t, d.shader, scene.ShaderTexturePointLightDiffuse, i)
		}
	}

	// order of draws in each pass
	for _, start := range []int{0, half + 1} {
		for i := 0; i < scene.DefaultNumSpheres; i++ {
			test.ExpectEquality(t, dev.draws[start+i].mesh, scene.MeshSmallSphere)
			test.ExpectEquality(t, dev.draws[start+i].texture, scene.TexMoon)
		}
		test.ExpectEquality(t, dev.draws[start+scene.DefaultNumSpheres].mesh, scene.MeshBigSphere)
		test.ExpectEquality(t, dev.draws[start+scene.DefaultNumSpheres].texture, scene.TexMars)
		test.ExpectEquality(t, dev.draws[start+scene.DefaultNumSpheres+1].mesh, scene.MeshSmallSphere)
		test.ExpectEquality(t, dev.draws[start+scene.DefaultNumSpheres+1].texture, scene.TexMoon)
	}

	// lit draws use the white light at (0,3,0)
	d := dev.draws[0]
	test.ExpectEquality(t, d.params.LightPos, mgl32.Vec3{0, 3, 0})
	test.ExpectEquality(t, d.params.Color, mgl32.Vec4{1, 1, 1, 1})
	test.ExpectEquality(t, d.params.Projection, scn.Projection())

	// the reflection of a sphere is below the floor and the sphere itself is
	// above it
	p := scn.Placements()[0]
	reflected := dev.draws[0].params.ModelView.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	upright := dev.draws[half+1].params.ModelView.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	test.ExpectApproximate(t, upright[0], p[0], 0.0001)
	test.ExpectApproximate(t, upright[1], 0.0, 0.0001)
	test.ExpectApproximate(t, upright[2], p[2], 0.0001)
	test.ExpectApproximate(t, reflected[1], -0.8, 0.0001)

	// the matrix stack is balanced so rendering a second frame gives the
	// same result
	first := dev.draws
	dev.draws = nil
	test.DemandSuccess(t, scn.Render(&dev))
	test.DemandEquality(t, len(dev.draws), len(first))
	for i := range first {
		test.ExpectEquality(t, dev.draws[i].params.ModelView, first[i].params.ModelView, i)
	}
}

func TestRenderAnimation(t *testing.T) {
	scn, advance := newScene(t)

	var dev recorder
	scn.Reshape(&dev, 800, 600)
	test.DemandSuccess(t, scn.Render(&dev))
	big := scene.DefaultNumSpheres + 2 + 1 + scene.DefaultNumSpheres
	before := dev.draws[big].params.ModelView

	// one and a half seconds is a rotation of 90 degrees
	advance(1500 * time.Millisecond)
	dev.draws = nil
	test.DemandSuccess(t, scn.Render(&dev))
	after := dev.draws[big].params.ModelView

	test.ExpectEquality(t, dev.draws[big].mesh, scene.MeshBigSphere)
	expected := before.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	test.ExpectEquality(t, after.ApproxEqualThreshold(expected, 0.0001), true)
}

func TestReshape(t *testing.T) {
	scn, _ := newScene(t)

	var dev recorder
	scn.Reshape(&dev, 800, 600)
	test.ExpectEquality(t, dev.width, int32(800))
	test.ExpectEquality(t, dev.height, int32(600))
	test.ExpectEquality(t, scn.Projection(), mgl32.Perspective(mgl32.DegToRad(35), 800.0/600.0, 1, 100))

	// zero height is treated as one
	scn.Reshape(&dev, 640, 0)
	test.ExpectEquality(t, dev.height, int32(1))
	test.ExpectEquality(t, scn.Projection(), mgl32.Perspective(mgl32.DegToRad(35), 640.0, 1, 100))

	// changing the field of view changes the projection immediately
	scn.Reshape(&dev, 800, 600)
	test.ExpectSuccess(t, scn.Prefs.FOV.Set(60.0))
	test.ExpectEquality(t, scn.Projection(), mgl32.Perspective(mgl32.DegToRad(60), 800.0/600.0, 1, 100))
}

func TestSpecialKeys(t *testing.T) {
	scn, _ := newScene(t)

	// forwards is down the negative Z axis
	prev := scn.Camera().Origin()
	for i := 0; i < 10; i++ {
		scn.SpecialKey(scene.KeyUp, false)
		o := scn.Camera().Origin()
		test.ExpectEquality(t, o[2] < prev[2], true, i)
		prev = o
	}
	test.ExpectApproximate(t, prev[2], -1.0, 0.0001)

	for i := 0; i < 10; i++ {
		scn.SpecialKey(scene.KeyDown, false)
		o := scn.Camera().Origin()
		test.ExpectEquality(t, o[2] > prev[2], true, i)
		prev = o
	}
	test.ExpectApproximate(t, prev[2], 0.0, 0.0001)

	// rotation does not move the camera
	scn.SpecialKey(scene.KeyLeft, false)
	test.ExpectEquality(t, scn.Camera().Origin(), prev)
	test.ExpectApproximate(t, scn.Status().Heading, 5.0, 0.001)

	scn.SpecialKey(scene.KeyRight, false)
	scn.SpecialKey(scene.KeyRight, false)
	test.ExpectEquality(t, scn.Camera().Origin(), prev)
	test.ExpectApproximate(t, scn.Status().Heading, 355.0, 0.001)

	// the object frame is unaffected by unshifted keys
	test.ExpectEquality(t, scn.Object().Origin(), mgl32.Vec3{0, 0, 0})

	// shifted keys move the object frame and leave the camera alone
	camera := scn.Camera()
	scn.SpecialKey(scene.KeyUp, true)
	test.ExpectEquality(t, scn.Camera(), camera)
	test.ExpectApproximate(t, scn.Object().Origin()[2], -0.1, 0.0001)
}

func TestStepPreferences(t *testing.T) {
	scn, _ := newScene(t)

	test.ExpectSuccess(t, scn.Prefs.LinearStep.Set(0.5))
	test.ExpectSuccess(t, scn.Prefs.AngularStep.Set(90))

	scn.SpecialKey(scene.KeyUp, false)
	test.ExpectApproximate(t, scn.Camera().Origin()[2], -0.5, 0.0001)

	scn.SpecialKey(scene.KeyLeft, false)
	test.ExpectApproximate(t, scn.Status().Heading, 90.0, 0.001)
}

func TestPreferencesRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	cfg := scene.DefaultConfig()
	cfg.PrefsFile = fn
	scn, err := scene.NewScene(cfg)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, scn.Prefs.FOV.Set(45.0))
	test.DemandSuccess(t, scn.Prefs.Save())

	other, err := scene.NewScene(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, other.Prefs.FOV.Get().(float64), 45.0)
	test.ExpectEquality(t, other.Prefs.LinearStep.Get().(float64), 0.1)

	// command line values override the file
	prefs.PushCommandLineStack("scene.fov::20")
	defer prefs.PopCommandLineStack()
	test.DemandSuccess(t, other.Prefs.Load())
	test.ExpectEquality(t, other.Prefs.FOV.Get().(float64), 20.0)
}

func TestPrefsOverrideForRunOnly(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	cfg := scene.DefaultConfig()
	cfg.PrefsFile = fn

	prefs.PushCommandLineStack("scene.fov::20")
	scn, err := scene.NewScene(cfg)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scn.Prefs.FOV.Get().(float64), 20.0)
	test.DemandSuccess(t, scn.Prefs.Save())

	other, err := scene.NewScene(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, other.Prefs.FOV.Get().(float64), 35.0)
}

func TestStopwatch(t *testing.T) {
	clock, advance := fixedClock()
	sw := scene.NewStopwatch(clock)
	test.ExpectEquality(t, sw.Elapsed(), time.Duration(0))

	advance(2 * time.Second)
	test.ExpectEquality(t, sw.Elapsed(), 2*time.Second)
	test.ExpectApproximate(t, sw.ElapsedSeconds(), 2.0, 0.0001)

	sw.Reset()
	test.ExpectEquality(t, sw.Elapsed(), time.Duration(0))
}
