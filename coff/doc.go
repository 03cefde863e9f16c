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

// Package coff reads the TI variant of the COFF object file format, as
// produced by TI embedded target toolchains.
//
// An Image is created from a byte buffer with NewImage(). Creation fails
// unless the header and the extents of the section table, symbol table and
// string table all validate against the length of the buffer. The section
// table itself is decoded lazily, on the first call to Sections(), and
// cached for the lifetime of the Image.
//
// Section data is exposed as views into the image buffer rather than as
// copies. The buffer must therefore outlive any Section or SectionTable
// taken from the Image. The package performs no locking; if the buffer is
// shared between goroutines the caller must coordinate access.
//
// The CopySections() function assembles a flat target memory image by
// copying every allocated section that falls inside the requested address
// window into a destination buffer.
//
// The symbol table is never iterated. Its extent is computed only to locate
// the string table that follows it.
package coff
