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

// validExtent checks a candidate (offset, length) extent against the length
// of the enclosing buffer. Every offset and length decoded from the image is
// passed through this function before it is used to slice the buffer.
func validExtent(baseLen int, offset int, length int) bool {
	return offset >= 0 && length >= 0 && offset+length <= baseLen
}
