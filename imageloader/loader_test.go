// This file is part of ctmslib.
//
// ctmslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ctmslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ctmslib.  If not, see <https://www.gnu.org/licenses/>.

package imageloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LostTime76/ctmslib/curated"
	"github.com/LostTime76/ctmslib/imageloader"
	"github.com/LostTime76/ctmslib/test"
)

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.out")

	err := os.WriteFile(fn, []byte("123456789"), 0644)
	test.DemandSuccess(t, err)

	ld := imageloader.NewLoader(fn)
	test.ExpectEquality(t, ld.HasLoaded(), false)

	err = ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, string(ld.Data), "123456789")

	// SHA1 of "123456789"
	test.ExpectEquality(t, ld.Hash, "f7c3bc1d808e04732adf679965ccc34ca7ae3441")

	// a second load is a no-op
	err = ld.Load()
	test.ExpectSuccess(t, err)
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.out")

	err := os.WriteFile(fn, []byte("123456789"), 0644)
	test.DemandSuccess(t, err)

	ld := imageloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"

	err = ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, imageloader.ErrUnexpectedHash), true)
}

func TestMissingFile(t *testing.T) {
	ld := imageloader.NewLoader(filepath.Join(t.TempDir(), "no-such-file.out"))

	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Has(err, imageloader.ErrLoading), true)
}

func TestShortName(t *testing.T) {
	ld := imageloader.NewLoader("build/os.out")
	test.ExpectEquality(t, ld.ShortName(), "os")
}
