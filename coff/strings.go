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

package coff

import (
	"unicode/utf8"

	"github.com/LostTime76/ctmslib/curated"
)

// Sentinel error pattern for string decoding, for use with curated.Is().
const ErrStringDecode = "coff: the section name is not valid text"

// the size of an inline name entry in bytes within a section table entry
const nameEntSize = 8

// decodeString decodes a string from the start of the slice. The string ends
// at the first NUL byte or at the end of the slice, whichever comes first.
func decodeString(data []byte) (string, error) {
	slen := 0
	for slen < len(data) && data[slen] != 0 {
		slen++
	}

	if !utf8.Valid(data[:slen]) {
		return "", curated.Errorf(ErrStringDecode)
	}

	return string(data[:slen]), nil
}

// entryName resolves the name of the section table entry at entryAddr.
//
// Short names occupy the first 8 bytes of the entry itself. Longer names are
// stored in the string table and referenced by offset; inStrtab selects
// between the two. The returned boolean is false when the name cannot be
// located within the buffer, ie. when the maximum readable length at the
// resolved address is zero or negative.
func entryName(data []byte, entryAddr int, inStrtab bool, strOffs uint32, strtabAddr int) (string, bool, error) {
	addr := entryAddr
	max := nameEntSize

	if inStrtab {
		addr = strtabAddr + int(strOffs)
		max = len(data) - addr
	}

	if max <= 0 {
		return "", false, nil
	}

	s, err := decodeString(data[addr : addr+max])
	if err != nil {
		return "", false, err
	}

	return s, true, nil
}
