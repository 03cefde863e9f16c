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

// ctms is a command line tool for inspecting TI coff images and for
// assembling them into flat target memory images.
package main

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/LostTime76/ctmslib/buildcfg"
	"github.com/LostTime76/ctmslib/coff"
	"github.com/LostTime76/ctmslib/dataops"
	"github.com/LostTime76/ctmslib/imageloader"
	"github.com/LostTime76/ctmslib/logger"
	"github.com/LostTime76/ctmslib/modalflag"
	"github.com/LostTime76/ctmslib/version"
)

func main() {
	// echo log entries as they are made when requested through the
	// environment
	if env.Bool("CTMS_LOG") {
		logger.SetEcho(os.Stderr)
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("INFO", "BUILD", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "BUILD":
		err = build(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// load a coff image from the single remaining command line argument.
func loadImage(md *modalflag.Modes) (*coff.Image, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("%s mode requires a coff image file", md.Mode())
	case 1:
		// continues below
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md.Mode())
	}

	ld := imageloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return nil, err
	}

	logger.Logf("ctms", "%s loaded (sha1 %s)", ld.ShortName(), ld.Hash)

	return coff.NewImage(ld.Data)
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	img, err := loadImage(md)
	if err != nil {
		return err
	}

	fmt.Printf("target chipset: %#02x\n", img.TargetID())
	fmt.Printf("entry address:  %08x\n", img.Entry())
	fmt.Printf("image size:     %d bytes\n", img.Size())

	sectab, err := img.Sections()
	if err != nil {
		return err
	}

	fmt.Printf("sections:       %d\n", sectab.Len())
	for _, sect := range sectab.Sections() {
		fmt.Printf("  %s\n", sect)
	}

	return nil
}

func build(md *modalflag.Modes) error {
	md.NewMode()
	config := md.AddString("config", "build.toml", "the build description file")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	img, err := loadImage(md)
	if err != nil {
		return err
	}

	bld, err := buildcfg.Load(*config)
	if err != nil {
		return err
	}

	// pre-fill the output image with the pad value. sections not placed by
	// CopySections() retain the padding
	dst := dataops.ExtendTo(make([]byte, 0, bld.Length), bld.Length, byte(bld.Pad))

	if err := img.CopySections(bld.Address, dst); err != nil {
		return err
	}

	ops := dataops.SoftwareOps{}

	if bld.Rev16 {
		if err := ops.Rev16(dst); err != nil {
			return err
		}
	}

	if bld.Checksum {
		fmt.Printf("crc32: %08x\n", ops.CRC32(dst))
	}

	if err := os.WriteFile(bld.Output, dst, 0644); err != nil {
		return err
	}

	fmt.Printf("%s written (%d bytes)\n", bld.Output, len(dst))

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
