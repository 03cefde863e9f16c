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

// Package dataops provides the buffer operations that are applied to a
// memory image after it has been assembled from a coff image: 16bit word
// endianness reversal, CRC32 checksumming, padding and alignment.
//
// The operations work on buffers in place. Callers that share a buffer with
// other parts of the program are responsible for making sure there are no
// concurrent writers.
package dataops

import (
	"hash/crc32"

	"github.com/LostTime76/ctmslib/curated"
)

// Sentinel error pattern for Rev16, for use with curated.Is().
const ErrRev16 = "dataops: the length of the buffer must be 2 byte aligned"

// Rev16 reverses the endianness of all the 2 byte words within the buffer.
// The buffer is modified in place. The length of the buffer must be a
// multiple of 2.
func Rev16(data []byte) error {
	if len(data)&0x01 != 0 {
		return curated.Errorf(ErrRev16)
	}

	for i := 0; i < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}

	return nil
}

// CRC32 calculates the IEEE CRC32 checksum of the buffer.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// Align rounds value up to the nearest multiple of align. A value that is
// already a multiple of align is returned unchanged, as is any value when
// align is zero.
func Align(value int, align int) int {
	if align == 0 {
		return value
	}
	if rem := value % align; rem != 0 {
		return value + align - rem
	}
	return value
}

// ExtendTo extends a buffer to the specified length by appending pad bytes.
// If the buffer is already at least dlen bytes long, no operation is
// performed. The extended buffer is returned.
func ExtendTo(data []byte, dlen int, pad byte) []byte {
	for len(data) < dlen {
		data = append(data, pad)
	}
	return data
}
