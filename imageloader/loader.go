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

// Package imageloader is used to source the byte buffer that comprises a
// coff image. Data can be loaded from a local file or over HTTP. The loaded
// buffer is fingerprinted with SHA1 so callers can detect that the file they
// loaded is the file they expected.
//
// The simplest instance of the Loader type:
//
//	ld := imageloader.Loader{
//		Filename: "build/os.out",
//	}
//
// After a successful Load() the Data field holds the complete image and the
// Hash field its SHA1 fingerprint.
package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/LostTime76/ctmslib/curated"
)

// Sentinel error patterns for the Loader type, for use with curated.Has().
const (
	ErrLoading        = "imageloader: %v"
	ErrUnexpectedHash = "imageloader: unexpected hash value"
)

// Loader is used to specify the coff image file to load and, after a
// call to Load(), holds the image data.
type Loader struct {
	// filename of the image to load. local path or http/https URL
	Filename string

	// expected SHA1 hash of the loaded data. the empty string indicates
	// that the hash is unknown and need not be validated. after a load
	// operation the field holds the hash of the loaded data
	Hash string

	// the loaded data. subsequent calls to Load() are no-ops once this
	// field is populated
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the Loader filename, with the
// directory and file extension removed.
func (ld Loader) ShortName() string {
	sn := path.Base(ld.Filename)
	return strings.TrimSuffix(sn, path.Ext(sn))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data into the Data field. Loader filenames with a valid URL
// scheme will use that method to load the data. Currently supported schemes
// are HTTP(S) and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(ErrLoading, err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(ErrLoading, err)
		}

	case "file":
		fallthrough

	case "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(ErrLoading, err)
		}

	default:
		return curated.Errorf(ErrLoading, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash and check for consistency with any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(ErrUnexpectedHash)
	}

	ld.Hash = hash

	return nil
}
