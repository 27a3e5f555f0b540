// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xlsx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSharedStringIndex indicates a cell refers to a shared string that does
// not exist.
var ErrSharedStringIndex = errors.New("invalid shared string index")

// Cell types as found in the t attribute of a cell.
const (
	CellTypeSharedString = "s"
	CellTypeInlineString = "inlineStr"
)

// Cell is a single <c> element of a worksheet row.
type Cell struct {
	Ref    string      `xml:"r,attr"`
	Type   string      `xml:"t,attr"`
	Value  *string     `xml:"v"`
	Inline *stringItem `xml:"is"`
}

// stringItem is either a plain <t> text or a sequence of rich text runs.
type stringItem struct {
	Text *string `xml:"t"`
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

func (si stringItem) String() string {
	if si.Text != nil {
		return *si.Text
	}
	var b strings.Builder
	for _, r := range si.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// SharedStrings is the workbook wide table of text values referenced by index.
type SharedStrings []string

type sharedStringTable struct {
	Items []stringItem `xml:"si"`
}

func parseSharedStrings(data []byte) (SharedStrings, error) {
	var sst sharedStringTable
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", sharedStringsPart, err)
	}
	table := make(SharedStrings, len(sst.Items))
	for i, si := range sst.Items {
		table[i] = si.String()
	}
	return table, nil
}

// Resolve returns the text value of c. Shared string cells are looked up in
// the table, all other cells yield their literal value. A cell without a
// value resolves to the empty string.
func (s SharedStrings) Resolve(c Cell) (string, error) {
	if c.Type == CellTypeInlineString && c.Inline != nil {
		return c.Inline.String(), nil
	}
	if c.Value == nil {
		return "", nil
	}
	if c.Type != CellTypeSharedString {
		return *c.Value, nil
	}

	idx, err := strconv.Atoi(strings.TrimSpace(*c.Value))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSharedStringIndex, *c.Value)
	}
	if idx < 0 || idx >= len(s) {
		return "", fmt.Errorf("%w: %d of %d", ErrSharedStringIndex, idx, len(s))
	}
	return s[idx], nil
}
