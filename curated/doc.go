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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which works like Errorf() in the fmt package except that
// the format string is retained as a pattern for later comparison.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern:
//
//	e := curated.Errorf("decode: bad value %d", v)
//
//	if curated.Is(e, "decode: bad value %d") {
//		...
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain; and IsAny() simply answers whether the error was created by
// this package at all.
//
// Patterns intended for use with Is() and Has() should be stored as suitably
// named const strings by the package that raises them.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. Parts are delimited by the string ": " as suggested on p239
// of "The Go Programming Language" (Donovan, Kernighan). This means functions
// can wrap errors from deeper in the same package without worrying about
// stuttering messages.
package curated
