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

package curated_test

import (
	"testing"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/test"
)

func TestPatternMatching(t *testing.T) {
	err := curated.Errorf("foo: %v", "bar")
	test.ExpectedSuccess(t, curated.Is(err, "foo: %v"))
	test.ExpectedFailure(t, curated.Is(err, "baz: %v"))
	test.ExpectedFailure(t, curated.Is(nil, "foo: %v"))
}

func TestWrappedErrors(t *testing.T) {
	inner := curated.Errorf("inner: %v", "detail")
	outer := curated.Errorf("outer: %v", inner)

	// Is() only matches the outermost pattern
	test.ExpectedFailure(t, curated.Is(outer, "inner: %v"))

	// Has() searches the whole chain
	test.ExpectedSuccess(t, curated.Has(outer, "inner: %v"))
	test.ExpectedSuccess(t, curated.Has(outer, "outer: %v"))
	test.ExpectedFailure(t, curated.Has(outer, "unseen: %v"))
}

func TestDeduplication(t *testing.T) {
	// duplicate adjacent message parts should be removed
	inner := curated.Errorf("chip8: %v", "bad rom")
	outer := curated.Errorf("chip8: %v", inner)
	test.Equate(t, outer.Error(), "chip8: bad rom")
}

func TestIsAny(t *testing.T) {
	test.ExpectedSuccess(t, curated.IsAny(curated.Errorf("foo")))
	test.ExpectedFailure(t, curated.IsAny(nil))
}
