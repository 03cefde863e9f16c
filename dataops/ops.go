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

package dataops

// Ops groups the buffer operations that an embedding system may want to
// replace with a native or hardware assisted implementation.
type Ops interface {
	Rev16(data []byte) error
	CRC32(data []byte) uint32
}

// SoftwareOps is the pure software reference implementation of the Ops
// interface.
type SoftwareOps struct{}

// Rev16 implements the Ops interface.
func (SoftwareOps) Rev16(data []byte) error {
	return Rev16(data)
}

// CRC32 implements the Ops interface.
func (SoftwareOps) CRC32(data []byte) uint32 {
	return CRC32(data)
}
