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
	"io"
	"log/slog"
	"strings"

	"github.com/natalidad/birthtrend/data"
	"github.com/natalidad/birthtrend/xlsx"
)

const ageColumns = 3

// AgeOptions controls how rows of the maternal age spreadsheet are mapped.
type AgeOptions struct {
	// Strict turns malformed rows into errors instead of skipping them.
	// Rows with an empty or placeholder year are skipped in either mode.
	Strict bool
	Logger *slog.Logger
}

func (o AgeOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// ReadAgeFile reads the live births by maternal age group from the first
// worksheet of the XLSX workbook at path.
func ReadAgeFile(path string, opts AgeOptions) ([]data.AgeRecord, int, error) {
	rows, err := xlsx.ReadRows(path)
	if err != nil {
		return nil, 0, err
	}
	return ParseAgeRows(path, rows, opts)
}

// ParseAgeRows maps spreadsheet rows to age records. The first row is the
// header. The columns are year, live births and age group. It returns the
// records and the number of skipped rows.
func ParseAgeRows(source string, rows [][]string, opts AgeOptions) ([]data.AgeRecord, int, error) {
	if len(rows) == 0 {
		return nil, 0, &ParseError{Source: source, Line: 1, Field: "header", Err: ErrNoHeader}
	}

	log := opts.logger()
	records := make([]data.AgeRecord, 0, len(rows)-1)
	skipped := 0
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) == 0 || isMissing(strings.TrimSpace(row[0])) {
			skipped++
			continue
		}

		record, err := parseAgeRow(source, line, row)
		if err != nil {
			if opts.Strict {
				return nil, skipped, err
			}
			log.Debug("skipping row", "source", source, "line", line, "error", err)
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}

func parseAgeRow(source string, line int, row []string) (data.AgeRecord, error) {
	year, err := parseYear(row[0])
	if err != nil {
		return data.AgeRecord{}, &ParseError{Source: source, Line: line, Field: "year", Value: row[0], Err: err}
	}
	if len(row) < ageColumns {
		return data.AgeRecord{}, &ParseError{Source: source, Line: line, Field: "ageGroup", Err: ErrMissingColumn}
	}
	births, err := parseCount(row[1])
	if err != nil {
		return data.AgeRecord{}, &ParseError{Source: source, Line: line, Field: "liveBirths", Value: row[1], Err: err}
	}
	return data.AgeRecord{Year: year, LiveBirths: births, AgeGroup: row[2]}, nil
}
