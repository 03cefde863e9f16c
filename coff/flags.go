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

import "strings"

// SectionFlags describes the attributes of a section within a coff image.
type SectionFlags uint32

// List of SectionFlags values.
const (
	// the section contains code
	FlagText SectionFlags = 0x20

	// the section contains initialized data
	FlagData SectionFlags = 0x40

	// the section contains uninitialized data
	FlagBSS SectionFlags = 0x80
)

// the bit mask for indicating if a section exists within target memory
const flagAllocMask = FlagText | FlagData | FlagBSS

// IsAllocated returns true if the section exists within target memory, as
// opposed to being a purely file resident artefact (debug information etc).
func (f SectionFlags) IsAllocated() bool {
	return f&flagAllocMask != 0
}

func (f SectionFlags) String() string {
	s := []string{}
	if f&FlagText == FlagText {
		s = append(s, "TEXT")
	}
	if f&FlagData == FlagData {
		s = append(s, "DATA")
	}
	if f&FlagBSS == FlagBSS {
		s = append(s, "BSS")
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, "|")
}
