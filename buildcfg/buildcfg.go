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

// Package buildcfg describes a flat memory image build. The description is
// read from a TOML file:
//
//	address  = 0x80000
//	length   = 0x120000
//	pad      = 0xff
//	rev16    = true
//	checksum = true
//	output   = "os.bin"
//
// Address is the target memory address corresponding to the start of the
// output image; length is the length of the output image in bytes; pad is
// the byte value the image is pre-filled with before sections are copied in;
// rev16 requests a 16bit word endianness reversal of the finished image; and
// checksum requests a CRC32 report.
package buildcfg

import (
	"github.com/BurntSushi/toml"

	"github.com/LostTime76/ctmslib/curated"
)

// Sentinel error patterns for build descriptions, for use with curated.Is().
const (
	ErrReading   = "buildcfg: %v"
	ErrNoLength  = "buildcfg: the build must specify a positive image length"
	ErrNoOutput  = "buildcfg: the build must specify an output file"
	ErrRev16Odd  = "buildcfg: rev16 requires an even image length"
	ErrBadPad    = "buildcfg: the pad value must fit in a byte"
	ErrExtraKeys = "buildcfg: unrecognised keys in build description: %v"
)

// Build is a flat memory image build description.
type Build struct {
	Address  uint32 `toml:"address"`
	Length   int    `toml:"length"`
	Pad      int    `toml:"pad"`
	Rev16    bool   `toml:"rev16"`
	Checksum bool   `toml:"checksum"`
	Output   string `toml:"output"`
}

// default values for fields not present in the description.
func defaults() Build {
	return Build{
		Pad: 0xff,
	}
}

// validate the description after decoding. the checks here are about the
// description being self-consistent; whether the image can actually be
// built is decided later, by the coff package.
func (bld *Build) validate() error {
	if bld.Length <= 0 {
		return curated.Errorf(ErrNoLength)
	}
	if bld.Output == "" {
		return curated.Errorf(ErrNoOutput)
	}
	if bld.Rev16 && bld.Length&0x01 != 0 {
		return curated.Errorf(ErrRev16Odd)
	}
	if bld.Pad < 0 || bld.Pad > 0xff {
		return curated.Errorf(ErrBadPad)
	}
	return nil
}

// Load reads a build description from a TOML file.
func Load(path string) (*Build, error) {
	bld := defaults()

	meta, err := toml.DecodeFile(path, &bld)
	if err != nil {
		return nil, curated.Errorf(ErrReading, err)
	}

	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, curated.Errorf(ErrExtraKeys, undec)
	}

	if err := bld.validate(); err != nil {
		return nil, err
	}

	return &bld, nil
}

// Decode reads a build description from a TOML string.
func Decode(data string) (*Build, error) {
	bld := defaults()

	meta, err := toml.Decode(data, &bld)
	if err != nil {
		return nil, curated.Errorf(ErrReading, err)
	}

	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, curated.Errorf(ErrExtraKeys, undec)
	}

	if err := bld.validate(); err != nil {
		return nil, err
	}

	return &bld, nil
}
