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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/sphereworld/logger"
	"github.com/jetsetilly/sphereworld/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the string builder but not the log
	w.Reset()

	log.Log(logger.Allow, "test2", errors.New("this is another test"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "texture", "Marble.tga loaded")
	log.Log(logger.Allow, "texture", "Marble.tga loaded")
	log.Log(logger.Allow, "texture", "Marble.tga loaded")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "texture: Marble.tga loaded (repeat x3)\n")
	test.ExpectEquality(t, len(log.Copy()), 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		log.Log(logger.Allow, "tag", s)
	}

	entries := log.Copy()
	test.DemandEquality(t, len(entries), 3)
	test.ExpectEquality(t, entries[0].Detail, "c")
	test.ExpectEquality(t, entries[2].Detail, "e")
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)

	q := &logger.Quiet{Silent: true}
	log.Log(q, "frame", "should not appear")
	test.ExpectEquality(t, len(log.Copy()), 0)

	q.Silent = false
	log.Logf(q, "frame", "rendered %d draws", 105)
	entries := log.Copy()
	test.DemandEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Detail, "rendered 105 draws")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(logger.Allow, "before", "echo")

	w := &strings.Builder{}
	log.SetEcho(w, true)
	test.ExpectEquality(t, w.String(), "before: echo\n")

	log.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, w.String(), "before: echo\nafter: echo\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "ignored", "echo")
	test.ExpectEquality(t, w.String(), "before: echo\nafter: echo\n")
}
