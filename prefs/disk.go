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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/sphereworld/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Sentinel error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	InvalidPrefs = "prefs: not a valid prefs file (%s)"
	DuplicateKey = "prefs: key already added (%s)"
	diskError    = "prefs: %v"
)

const (
	keySeparator  = " :: "
	lineSeparator = "\n"
)

// Disk represents preference values as stored on disk. Keys that are in the
// file but not added to the Disk instance are preserved when the file is
// saved, so several Disk instances can share the same file.
//
// Values taken from the command line stack are for the current run only. The
// value in the file is left untouched by Save() for those keys.
type Disk struct {
	path    string
	entries map[string]pref

	// keys whose current value came from the command line stack
	overridden map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:       path,
		entries:    make(map[string]pref),
		overridden: make(map[string]bool),
	}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(diskError, err)
		}
	}
	return nil
}

// readFile returns the key/value pairs in the prefs file. A missing file is
// reported with the NoPrefsFile pattern.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(diskError, err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefs, dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySeparator, 2)
		if len(kv) != 2 {
			continue // for loop
		}
		data[strings.TrimSpace(kv[0])] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(diskError, err)
	}

	return data, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	data, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if dsk.overridden[k] {
			continue // for loop
		}
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString(lineSeparator)
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s%s", k, keySeparator, data[k], lineSeparator))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(diskError, err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack (see PushCommandLineStack()) override values in the file but are not
// written by a later call to Save().
//
// A missing prefs file is returned as an error matching NoPrefsFile but the
// command line values are still applied. Callers usually ignore that error.
func (dsk *Disk) Load() error {
	data, fileErr := dsk.readFile()
	if fileErr != nil && !curated.Is(fileErr, NoPrefsFile) {
		return fileErr
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(diskError, err)
			}
		}
		ok, v := GetCommandLinePref(k)
		if ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(diskError, err)
			}
		}
		dsk.overridden[k] = ok
	}

	return fileErr
}
