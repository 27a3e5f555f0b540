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

// Package xlsx reads the cell values of the first worksheet of an XLSX
// workbook directly from its OOXML parts.
//
// Only cells present in the sheet XML are returned. Empty columns are not
// reconstructed, so the position of a value within a row depends on the
// producer always writing the leading cells of that row.
package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	sharedStringsPart = "xl/sharedStrings.xml"
	firstSheetPart    = "xl/worksheets/sheet1.xml"
)

// ErrPartNotFound indicates a required part is missing from the archive.
var ErrPartNotFound = errors.New("part not found")

// Workbook is an opened XLSX archive together with its shared string table.
type Workbook struct {
	zr            *zip.Reader
	closer        io.Closer
	SharedStrings SharedStrings
}

// Open opens the XLSX archive at path. The caller has to Close the workbook.
func Open(path string) (*Workbook, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %s: %w", path, err)
	}
	wb, err := newWorkbook(&rc.Reader)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("could not read workbook %s: %w", path, err)
	}
	wb.closer = rc
	return wb, nil
}

// NewWorkbook reads a workbook from r, which has the given size in bytes.
func NewWorkbook(r io.ReaderAt, size int64) (*Workbook, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return newWorkbook(zr)
}

func newWorkbook(zr *zip.Reader) (*Workbook, error) {
	wb := &Workbook{zr: zr}
	data, err := readZipFile(zr, sharedStringsPart)
	if errors.Is(err, ErrPartNotFound) {
		// workbooks without any text cells have no shared string part
		return wb, nil
	}
	if err != nil {
		return nil, err
	}
	wb.SharedStrings, err = parseSharedStrings(data)
	if err != nil {
		return nil, err
	}
	return wb, nil
}

// Close releases the underlying file, if any.
func (wb *Workbook) Close() error {
	if wb.closer == nil {
		return nil
	}
	return wb.closer.Close()
}

type worksheet struct {
	Rows []sheetRow `xml:"sheetData>row"`
}

type sheetRow struct {
	Cells []Cell `xml:"c"`
}

// Rows returns the resolved values of the first worksheet, one slice per row.
func (wb *Workbook) Rows() ([][]string, error) {
	data, err := readZipFile(wb.zr, firstSheetPart)
	if err != nil {
		return nil, err
	}

	var ws worksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", firstSheetPart, err)
	}

	rows := make([][]string, 0, len(ws.Rows))
	for i, row := range ws.Rows {
		values := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			v, err := wb.SharedStrings.Resolve(c)
			if err != nil {
				return nil, fmt.Errorf("row %d, cell %s: %w", i+1, c.Ref, err)
			}
			values = append(values, v)
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// ReadRows opens the workbook at path, returns the rows of its first
// worksheet and closes it again.
func ReadRows(path string) ([][]string, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	rows, err := wb.Rows()
	if err != nil {
		return nil, fmt.Errorf("could not read rows of %s: %w", path, err)
	}
	return rows, nil
}

// readZipFile reads the content of the named part of the archive.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}
