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

package buildcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LostTime76/ctmslib/buildcfg"
	"github.com/LostTime76/ctmslib/curated"
	"github.com/LostTime76/ctmslib/test"
)

func TestDecode(t *testing.T) {
	bld, err := buildcfg.Decode(`
address  = 0x80000
length   = 0x120000
rev16    = true
checksum = true
output   = "os.bin"
`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, bld.Address, 0x80000)
	test.ExpectEquality(t, bld.Length, 0x120000)
	test.ExpectEquality(t, bld.Rev16, true)
	test.ExpectEquality(t, bld.Checksum, true)
	test.ExpectEquality(t, bld.Output, "os.bin")

	// pad defaults to 0xff
	test.ExpectEquality(t, bld.Pad, 0xff)
}

func TestDecodeFailures(t *testing.T) {
	// no length
	_, err := buildcfg.Decode(`output = "os.bin"`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrNoLength), true)

	// no output
	_, err = buildcfg.Decode(`length = 16`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrNoOutput), true)

	// rev16 over an odd length image
	_, err = buildcfg.Decode(`
length = 15
rev16  = true
output = "os.bin"
`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrRev16Odd), true)

	// pad value too large for a byte
	_, err = buildcfg.Decode(`
length = 16
pad    = 256
output = "os.bin"
`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrBadPad), true)

	// unknown keys are rejected
	_, err = buildcfg.Decode(`
length  = 16
output  = "os.bin"
unknown = true
`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrExtraKeys), true)

	// not valid TOML
	_, err = buildcfg.Decode(`length = = 16`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrReading), true)
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "build.toml")

	err := os.WriteFile(fn, []byte(`
length = 16
output = "os.bin"
`), 0644)
	test.DemandSuccess(t, err)

	bld, err := buildcfg.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bld.Length, 16)

	// a missing file is a reading error
	_, err = buildcfg.Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, buildcfg.ErrReading), true)
}
