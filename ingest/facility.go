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

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natalidad/birthtrend/data"
)

const (
	// PreambleLines is the number of title and header lines before the data.
	PreambleLines = 3

	// DefaultFootnoteMarker starts the notes following the data lines.
	DefaultFootnoteMarker = "Nota"

	fieldSeparator = ";"
)

// Positions of the fields of a facility data line.
const (
	colYear = iota
	colTotal
	colPublic
	colPrivate
	colHomeBirth
	colOther
	colExtra1
	colExtra2
)

// FacilityOptions controls parsing of the delivery facility file.
type FacilityOptions struct {
	// FootnoteMarker terminates the data when a line starts with it.
	// Defaults to DefaultFootnoteMarker.
	FootnoteMarker string
}

func (o FacilityOptions) footnoteMarker() string {
	if o.FootnoteMarker == "" {
		return DefaultFootnoteMarker
	}
	return o.FootnoteMarker
}

// ReadFacilityFile reads the births by delivery facility from the semicolon
// delimited file at path.
func ReadFacilityFile(path string, opts FacilityOptions) ([]data.FacilityRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseFacility(path, f, opts)
}

// ParseFacility reads facility records from r. The first PreambleLines lines
// are skipped. Reading stops at the first blank line or the first line
// starting with the footnote marker.
func ParseFacility(source string, r io.Reader, opts FacilityOptions) ([]data.FacilityRecord, error) {
	scanner := bufio.NewScanner(r)
	for i := 0; i < PreambleLines; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, &ParseError{Source: source, Line: i + 1, Field: "preamble", Err: ErrMissingPreamble}
		}
	}

	marker := opts.footnoteMarker()
	var records []data.FacilityRecord
	line := PreambleLines
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, marker) {
			break
		}
		record, err := parseFacilityLine(source, line, strings.Split(text, fieldSeparator))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", source, err)
	}
	return records, nil
}

func parseFacilityLine(source string, line int, fields []string) (data.FacilityRecord, error) {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	year, err := parseYear(field(colYear))
	if err != nil {
		return data.FacilityRecord{}, &ParseError{Source: source, Line: line, Field: "year", Value: field(colYear), Err: err}
	}

	record := data.FacilityRecord{
		Year:   year,
		Extra1: field(colExtra1),
		Extra2: field(colExtra2),
	}
	counts := []struct {
		name string
		col  int
		dst  **float64
	}{
		{"total", colTotal, &record.Total},
		{"public", colPublic, &record.Public},
		{"private", colPrivate, &record.Private},
		{"homeBirth", colHomeBirth, &record.HomeBirth},
		{"other", colOther, &record.Other},
	}
	for _, c := range counts {
		v, err := parseLocaleDecimal(field(c.col))
		if err != nil {
			return data.FacilityRecord{}, &ParseError{Source: source, Line: line, Field: c.name, Value: field(c.col), Err: err}
		}
		*c.dst = v
	}
	return record, nil
}
