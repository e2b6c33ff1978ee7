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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/gui/sdlgl"
	"github.com/jetsetilly/sphereworld/logger"
	"github.com/jetsetilly/sphereworld/modalflag"
	"github.com/jetsetilly/sphereworld/paths"
	"github.com/jetsetilly/sphereworld/prefs"
	"github.com/jetsetilly/sphereworld/scene"
	"github.com/jetsetilly/sphereworld/statsview"
	"github.com/jetsetilly/sphereworld/version"
)

// file used to decide which directory to run from
const workingDirectoryProbe = "Marble.tga"

// exit codes
const (
	exitFailure     = 1
	exitCommandLine = 10
)

// pattern for errors caused by the command line. these errors result in the
// exitCommandLine exit code
const commandLineError = "command line: %v"

// exitCode returns the exit code for the error returned by a mode.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if curated.Is(err, commandLineError) {
		return exitCommandLine
	}
	return exitFailure
}

// parseMode parses the flags for the current mode. The bool return value is
// false if the mode should not continue, for example if help was requested.
//
// Errors are returned as commandLineError. Arguments other than flags are
// not accepted.
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	if err != nil {
		return false, curated.Errorf(commandLineError, err)
	}
	if p != modalflag.ParseContinue {
		return false, nil
	}
	if len(md.RemainingArgs()) > 0 {
		return false, curated.Errorf(commandLineError, curated.Errorf("too many arguments for %s mode", md))
	}
	return true, nil
}

// checkSpheres makes sure the number of spheres on the command line is usable.
func checkSpheres(spheres int) error {
	if spheres < 0 {
		return curated.Errorf(commandLineError, curated.Errorf("number of spheres cannot be negative (%d)", spheres))
	}
	return nil
}

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. It should
	// service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator

	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer stored in an interface is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLACEMENTS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitCommandLine}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)
	case "PLACEMENTS":
		err = placements(md, os.Stdout)
	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		if curated.Is(err, commandLineError) {
			fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "* error in %s mode: %s\n", md.String(), err)
		}
		sync.state <- stateRequest{req: reqQuit, args: exitCode(err)}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	spheres := md.AddInt("spheres", scene.DefaultNumSpheres, "number of spheres scattered over the floor")
	seed := md.AddInt64("seed", scene.DefaultSeed, "seed for sphere placement (zero for a random seed)")
	textures := md.AddString("textures", ".", "directory containing the texture files")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run (key::value; ...)")
	stats := md.AddBool("statsview", false, "run runtime statistics server")
	memvizFile := md.AddString("memviz", "", "write a graph of the scene data to file")

	if ok, err := parseMode(md); !ok {
		return err
	}
	if err := checkSpheres(*spheres); err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	// texture files are loaded relative to the working directory
	wd, err := paths.WorkingDirectory(os.Args[0], workingDirectoryProbe)
	if err != nil {
		return err
	}
	err = os.Chdir(wd)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "sphereworld", "working directory: %s", wd)

	prefsFile, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	cfg := scene.DefaultConfig()
	cfg.NumSpheres = *spheres
	cfg.Seed = *seed
	cfg.TextureDir = *textures
	cfg.PrefsFile = prefsFile

	scn, err := scene.NewScene(cfg)
	if err != nil {
		return err
	}

	// the scene is only safe to read from this goroutine until it is handed
	// to the gui on the main thread
	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, scn)
		if err != nil {
			return err
		}
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlgl.NewSdlGL(scn, prefsFile)
	}

	var gui *sdlgl.SdlGL
	select {
	case g := <-sync.creation:
		gui = g.(*sdlgl.SdlGL)
	case err := <-sync.creationError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitFailure}

		// wait forever. the main thread will exit the process
		select {}
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "sphereworld", "unused preferences: %s", unused)
		}
	}

	gui.LogFrameRate(*log)

	<-gui.Done()

	return scn.Prefs.Save()
}

func writeMemviz(filename string, scn *scene.Scene) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	status := scn.Status()
	memviz.Map(f, &status, scn.Placements())
	logger.Logf(logger.Allow, "sphereworld", "scene graph written to %s", filename)

	return nil
}

func placements(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	spheres := md.AddInt("spheres", scene.DefaultNumSpheres, "number of spheres scattered over the floor")
	seed := md.AddInt64("seed", scene.DefaultSeed, "seed for sphere placement (zero for a random seed)")

	if ok, err := parseMode(md); !ok {
		return err
	}
	if err := checkSpheres(*spheres); err != nil {
		return err
	}

	// the scene preferences are read but never saved
	prefsFile, err := paths.ResourcePathNoCreate("", prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}

	cfg := scene.DefaultConfig()
	cfg.NumSpheres = *spheres
	cfg.Seed = *seed
	cfg.PrefsFile = prefsFile

	scn, err := scene.NewScene(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "seed: %d\n", scn.Seed())
	for i, v := range scn.Placements() {
		fmt.Fprintf(output, "%3d: %7.2f %7.2f %7.2f\n", i, v[0], v[1], v[2])
	}

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	if ok, err := parseMode(md); !ok {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if r != "" {
		fmt.Fprintf(output, "%s\n", r)
	}

	return nil
}
