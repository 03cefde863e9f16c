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
	"encoding/binary"
	"fmt"

	"github.com/LostTime76/ctmslib/curated"
)

// Sentinel error patterns for section decoding, for use with curated.Is().
const (
	ErrSectionName = "coff: the section at index %d does not have a valid name"
	ErrSectionData = "coff: the section at index %d does not contain valid data"
)

// the size of a section entry in bytes within the image
const sectionEntSize = 48

// byte offsets of the fields used within a section table entry. each field
// is a 32bit little-endian value
const (
	sectionInlineName = 0
	sectionStrOffset  = 4
	sectionPAddr      = 8
	sectionVAddr      = 12
	sectionRawLen     = 16
	sectionDAddr      = 20
	sectionFlags      = 40
)

// Section is one entry of the section table within a coff image.
//
// The section does not copy its data. Data() returns a view into the image
// buffer at the range [daddr, daddr+dlen) so the buffer must outlive the
// section.
type Section struct {
	idx   int
	name  string
	paddr uint32
	vaddr uint32
	daddr int
	dlen  int
	flags SectionFlags

	// the image buffer the section data is a view into
	data []byte
}

// newSection decodes one section table entry. The ent argument must be the
// complete 48 byte entry and data must be the complete image buffer.
//
// The declared data length of an allocated section is stored in target
// addressable units and is scaled by byteLen, the byte length of those
// units. Non-allocated sections store their length in plain bytes.
func newSection(idx int, name string, named bool, ent []byte, data []byte, byteLen int) (*Section, error) {
	if !named {
		return nil, curated.Errorf(ErrSectionName, idx)
	}

	sect := &Section{
		idx:   idx,
		name:  name,
		paddr: binary.LittleEndian.Uint32(ent[sectionPAddr:]),
		vaddr: binary.LittleEndian.Uint32(ent[sectionVAddr:]),
		dlen:  int(binary.LittleEndian.Uint32(ent[sectionRawLen:])),
		daddr: int(binary.LittleEndian.Uint32(ent[sectionDAddr:])),
		flags: SectionFlags(binary.LittleEndian.Uint32(ent[sectionFlags:])),
		data:  data,
	}

	if sect.flags.IsAllocated() {
		sect.dlen *= byteLen
	}

	if !validExtent(len(data), sect.daddr, sect.dlen) {
		return nil, curated.Errorf(ErrSectionData, idx)
	}

	return sect, nil
}

// Index returns the position of the section within the section table.
func (sect *Section) Index() int {
	return sect.idx
}

// Name returns the name of the section.
func (sect *Section) Name() string {
	return sect.name
}

// PAddr returns the physical address of the section within target memory.
func (sect *Section) PAddr() uint32 {
	return sect.paddr
}

// VAddr returns the virtual address of the section within target memory.
func (sect *Section) VAddr() uint32 {
	return sect.vaddr
}

// DAddr returns the address of the section data within the image.
func (sect *Section) DAddr() int {
	return sect.daddr
}

// DLen returns the length of the section data in bytes within the image.
func (sect *Section) DLen() int {
	return sect.dlen
}

// Flags returns the flags for the section.
func (sect *Section) Flags() SectionFlags {
	return sect.flags
}

// Data returns a view of the section data within the image. The view shares
// storage with the image buffer; writing to it writes to the image.
func (sect *Section) Data() []byte {
	return sect.data[sect.daddr : sect.daddr+sect.dlen]
}

func (sect *Section) String() string {
	return fmt.Sprintf("%-10s paddr=%08x vaddr=%08x daddr=%06x dlen=%06x %s",
		sect.name, sect.paddr, sect.vaddr, sect.daddr, sect.dlen, sect.flags)
}
