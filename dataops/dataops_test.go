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

package dataops_test

import (
	"testing"

	"github.com/LostTime76/ctmslib/curated"
	"github.com/LostTime76/ctmslib/dataops"
	"github.com/LostTime76/ctmslib/test"
)

func TestRev16(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	err := dataops.Rev16(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, data[0], 0x02)
	test.ExpectEquality(t, data[1], 0x01)
	test.ExpectEquality(t, data[2], 0x04)
	test.ExpectEquality(t, data[3], 0x03)

	// applying the operation twice restores the original sequence
	err = dataops.Rev16(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, data[0], 0x01)
	test.ExpectEquality(t, data[1], 0x02)
	test.ExpectEquality(t, data[2], 0x03)
	test.ExpectEquality(t, data[3], 0x04)

	// an empty buffer is fine
	test.ExpectSuccess(t, dataops.Rev16([]byte{}))
}

func TestRev16OddLength(t *testing.T) {
	err := dataops.Rev16([]byte{0x01, 0x02, 0x03})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, dataops.ErrRev16), true)
}

func TestCRC32(t *testing.T) {
	// well known CRC32 check value
	test.ExpectEquality(t, dataops.CRC32([]byte("123456789")), 0xcbf43926)
	test.ExpectEquality(t, dataops.CRC32([]byte{}), 0x00000000)
}

func TestAlign(t *testing.T) {
	test.ExpectEquality(t, dataops.Align(0, 4), 0)
	test.ExpectEquality(t, dataops.Align(1, 4), 4)
	test.ExpectEquality(t, dataops.Align(4, 4), 4)
	test.ExpectEquality(t, dataops.Align(5, 4), 8)
	test.ExpectEquality(t, dataops.Align(100, 0), 100)
}

func TestExtendTo(t *testing.T) {
	data := dataops.ExtendTo(nil, 4, 0xff)
	test.DemandEquality(t, len(data), 4)
	for i := range data {
		test.ExpectEquality(t, data[i], 0xff, i)
	}

	// extending to a shorter length is a no-op
	data = dataops.ExtendTo(data, 2, 0x00)
	test.ExpectEquality(t, len(data), 4)
}

func TestSoftwareOps(t *testing.T) {
	var ops dataops.Ops = dataops.SoftwareOps{}

	data := []byte{0xaa, 0xbb}
	test.ExpectSuccess(t, ops.Rev16(data))
	test.ExpectEquality(t, data[0], 0xbb)
	test.ExpectEquality(t, data[1], 0xaa)

	test.ExpectEquality(t, ops.CRC32([]byte("123456789")), 0xcbf43926)
}
