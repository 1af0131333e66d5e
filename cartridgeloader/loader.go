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

// Package cartridgeloader is how programs are made ready for emulation.
// A CHIP-8 program image has no container format: it is raw bytes, copied
// verbatim into machine memory at the ROM origin. Interpretation of the
// bytes is entirely down to the CPU.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/retrogopher/gopher8/curated"
)

// Loader is used to specify the program to attach to the machine.
type Loader struct {
	// filename of the program to load
	Filename string

	// expected SHA1 hash of the program image. the empty string means the
	// hash is unknown and need not be validated. after a Load() the field
	// holds the hash of the loaded data
	Hash string

	// the loaded program image. valid after Load()
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the loader filename, with the
// path and file extension removed.
func (cartload Loader) ShortName() string {
	shortCartName := filepath.Base(cartload.Filename)
	return strings.TrimSuffix(shortCartName, filepath.Ext(cartload.Filename))
}

// Load the program image from the filesystem. The data is hashed and, if
// the Hash field was set beforehand, validated against the expected value.
func (cartload *Loader) Load() error {
	if len(cartload.Data) > 0 {
		// data is already loaded. the hash will have been set at the same
		// time
		return nil
	}

	data, err := ioutil.ReadFile(cartload.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if len(data) == 0 {
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("%s is empty", cartload.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cartload.Hash != "" && cartload.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cartload.Data = data
	cartload.Hash = hash

	return nil
}
