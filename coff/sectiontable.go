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
	"github.com/LostTime76/ctmslib/curated"
)

// Sentinel error patterns for section table access, for use with
// curated.Is().
const (
	ErrDuplicateSection = "coff: the image contains a duplicate section named %s"
	ErrNoSectionIdx     = "coff: no section at index %d"
	ErrNoSectionName    = "coff: no section named %s"
)

// SectionTable is the ordered collection of sections within a coff image.
// Once built the table is immutable. Lookup failures do not invalidate the
// table.
type SectionTable struct {
	sections []*Section
	tab      map[string]*Section
}

// newSectionTable builds the name keyed lookup for the sections. Section
// names must be unique within the table.
func newSectionTable(sections []*Section) (*SectionTable, error) {
	tab := make(map[string]*Section, len(sections))

	for _, sect := range sections {
		if _, ok := tab[sect.name]; ok {
			return nil, curated.Errorf(ErrDuplicateSection, sect.name)
		}
		tab[sect.name] = sect
	}

	return &SectionTable{
		sections: sections,
		tab:      tab,
	}, nil
}

// Len returns the number of sections in the table.
func (sectab *SectionTable) Len() int {
	return len(sectab.sections)
}

// ByIndex returns the section at the specified position in the table.
func (sectab *SectionTable) ByIndex(idx int) (*Section, error) {
	if idx < 0 || idx >= len(sectab.sections) {
		return nil, curated.Errorf(ErrNoSectionIdx, idx)
	}
	return sectab.sections[idx], nil
}

// ByName returns the section with the specified name. The comparison is an
// exact match.
func (sectab *SectionTable) ByName(name string) (*Section, error) {
	sect, ok := sectab.tab[name]
	if !ok {
		return nil, curated.Errorf(ErrNoSectionName, name)
	}
	return sect, nil
}

// Sections returns the sections in file order for iteration. The returned
// slice must not be modified.
func (sectab *SectionTable) Sections() []*Section {
	return sectab.sections
}
