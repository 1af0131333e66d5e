// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/test"
)

func TestShortName(t *testing.T) {
	cartload := cartridgeloader.NewLoader(filepath.Join("roms", "pong.ch8"))
	test.Equate(t, cartload.ShortName(), "pong")
}

func TestLoad(t *testing.T) {
	f, err := ioutil.TempFile("", "*.ch8")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	f.Write([]byte{0x60, 0x05, 0x61, 0x03})
	f.Close()

	cartload := cartridgeloader.NewLoader(f.Name())
	test.ExpectedSuccess(t, cartload.Load())
	test.Equate(t, len(cartload.Data), 4)

	// hash of a four byte program is stable
	firstHash := cartload.Hash
	cartload = cartridgeloader.NewLoader(f.Name())
	cartload.Hash = firstHash
	test.ExpectedSuccess(t, cartload.Load())

	// a wrong expected hash fails the load
	cartload = cartridgeloader.NewLoader(f.Name())
	cartload.Hash = "not a hash"
	test.ExpectedFailure(t, cartload.Load())
}

func TestLoadMissing(t *testing.T) {
	cartload := cartridgeloader.NewLoader("no such file")
	test.ExpectedFailure(t, cartload.Load())
}
