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

	"github.com/LostTime76/ctmslib/curated"
	"github.com/LostTime76/ctmslib/logger"
)

// Sentinel error patterns for image decoding, for use with curated.Is().
const (
	ErrNotValidImage = "coff: the data does not represent a valid image"
	ErrMagic         = "coff: expected a magic value of %#04x within the image but read %#04x"
	ErrTargetID      = "coff: the target chipset for the image is not valid"
	ErrSectionTable  = "coff: the image does not contain a valid section table"
	ErrSymbolTable   = "coff: the image does not contain a valid symbol table"
	ErrStringTable   = "coff: the image does not contain a valid string table"
)

// Magic is the expected magic value within an image header.
const Magic = 0x0108

const (
	// the size of the header in bytes within the image
	headerEntSize = 50

	// the size of a symbol entry in bytes within the image. symbols are
	// never decoded but the size of the symbol table locates the string
	// table that follows it
	symbolEntSize = 18
)

// byte offsets of the fields used within the image header. the header is a
// fixed layout, little-endian record
const (
	headerNumSections = 2  // 16bit
	headerSymtabAddr  = 8  // 32bit
	headerNumSymbols  = 12 // 32bit
	headerTargetID    = 20 // 16bit
	headerMagic       = 22 // 16bit
	headerEntry       = 38 // 32bit
)

// byte lengths of a target addressable unit, keyed by target chipset id.
// targets not in the table address memory in single bytes
var byteLens = map[uint16]int{
	0x9d: 2,
	0x98: 2,
}

// Image is a TI coff image decoded from a byte buffer.
//
// The Image takes ownership of the buffer passed to NewImage(). Sections
// hold views into the buffer, not copies.
type Image struct {
	data []byte

	targetID uint16
	entry    uint32

	numSections int
	strtabAddr  int

	// byte length of a target addressable unit for the image's target
	byteLen int

	// built on first call to Sections()
	sectab *SectionTable
}

// NewImage is the preferred method of initialisation for the Image type. The
// data buffer comprises the complete coff image.
//
// The header is decoded and every table extent is validated against the
// length of the buffer before the image is returned. No partially valid
// image is ever returned.
func NewImage(data []byte) (*Image, error) {
	dlen := len(data)

	// make sure there is enough data within the buffer to read the header
	if dlen < headerEntSize {
		return nil, curated.Errorf(ErrNotValidImage)
	}

	numSections := int(binary.LittleEndian.Uint16(data[headerNumSections:]))
	symtabAddr := int(binary.LittleEndian.Uint32(data[headerSymtabAddr:]))
	numSymbols := int(binary.LittleEndian.Uint32(data[headerNumSymbols:]))
	targetID := binary.LittleEndian.Uint16(data[headerTargetID:])
	magic := binary.LittleEndian.Uint16(data[headerMagic:])
	entry := binary.LittleEndian.Uint32(data[headerEntry:])

	sectabEnd := headerEntSize + numSections*sectionEntSize
	strtabAddr := symtabAddr + numSymbols*symbolEntSize
	strtabLen := dlen - strtabAddr

	// validation order matters. the first failing check determines the
	// reported error
	if magic != Magic {
		return nil, curated.Errorf(ErrMagic, Magic, magic)
	}

	if targetID == 0 {
		return nil, curated.Errorf(ErrTargetID)
	}

	if !validExtent(dlen, headerEntSize, numSections*sectionEntSize) {
		return nil, curated.Errorf(ErrSectionTable)
	}

	if sectabEnd > symtabAddr || strtabAddr > dlen {
		return nil, curated.Errorf(ErrSymbolTable)
	}

	if strtabLen <= 0 || !validExtent(dlen, strtabAddr, strtabLen) {
		return nil, curated.Errorf(ErrStringTable)
	}

	img := &Image{
		data:        data,
		targetID:    targetID,
		entry:       entry,
		numSections: numSections,
		strtabAddr:  strtabAddr,
		byteLen:     1,
	}

	if blen, ok := byteLens[targetID]; ok {
		img.byteLen = blen
	}

	logger.Logf("coff", "target chipset: %#02x (byte length %d)", img.targetID, img.byteLen)
	logger.Logf("coff", "entry address: %08x", img.entry)
	logger.Logf("coff", "sections: %d", img.numSections)

	return img, nil
}

// TargetID returns the target chipset id of the image.
func (img *Image) TargetID() uint16 {
	return img.targetID
}

// Entry returns the entry address of the image within target memory.
func (img *Image) Entry() uint32 {
	return img.entry
}

// Size returns the length of the image buffer in bytes.
func (img *Image) Size() int {
	return len(img.data)
}

// Sections returns the section table within the image. The table is decoded
// on the first call and cached for the lifetime of the image.
func (img *Image) Sections() (*SectionTable, error) {
	if img.sectab != nil {
		return img.sectab, nil
	}

	addr := headerEntSize
	sections := make([]*Section, 0, img.numSections)

	for idx := 0; idx < img.numSections; idx++ {
		ent := img.data[addr : addr+sectionEntSize]

		// a zero value in the inline name field means the name is stored in
		// the string table, referenced by offset
		inStrtab := binary.LittleEndian.Uint32(ent[sectionInlineName:]) == 0
		strOffs := binary.LittleEndian.Uint32(ent[sectionStrOffset:])

		name, named, err := entryName(img.data, addr, inStrtab, strOffs, img.strtabAddr)
		if err != nil {
			return nil, err
		}

		sect, err := newSection(idx, name, named, ent, img.data, img.byteLen)
		if err != nil {
			return nil, err
		}

		sections = append(sections, sect)
		addr += sectionEntSize
	}

	sectab, err := newSectionTable(sections)
	if err != nil {
		return nil, err
	}

	img.sectab = sectab

	return img.sectab, nil
}

// CopySections copies the data of every section allocated within target
// memory into the dst buffer. The addr argument is the target memory address
// that corresponds to the start of dst.
//
// A section is placed at its physical address when the range
// [paddr, paddr+dlen) falls entirely inside the destination window; failing
// that, at its virtual address by the same test. Sections that fit neither
// range are skipped. They may be intentionally outside the requested window
// so the skip is not an error.
func (img *Image) CopySections(addr uint32, dst []byte) error {
	sectab, err := img.Sections()
	if err != nil {
		return err
	}

	org := uint64(addr)
	end := org + uint64(len(dst))

	for _, sect := range sectab.Sections() {
		if !sect.flags.IsAllocated() {
			continue
		}

		dlen := uint64(sect.dlen)
		paddr := uint64(sect.paddr)
		vaddr := uint64(sect.vaddr)

		if paddr >= org && paddr+dlen <= end {
			copy(dst[paddr-org:], sect.Data())
			logger.Logf("coff", "section %s placed at %08x", sect.name, paddr)
		} else if vaddr >= org && vaddr+dlen <= end {
			copy(dst[vaddr-org:], sect.Data())
			logger.Logf("coff", "section %s placed at %08x", sect.name, vaddr)
		}
	}

	return nil
}
