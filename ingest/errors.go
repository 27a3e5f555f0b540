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
	"errors"
	"fmt"
)

var (
	// ErrMalformedYear indicates a year field that is not an integer.
	ErrMalformedYear = errors.New("malformed year")

	// ErrMalformedNumber indicates a count field that cannot be parsed.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrMissingColumn indicates a row with fewer cells than expected.
	ErrMissingColumn = errors.New("missing column")

	// ErrMissingPreamble indicates a facility file shorter than its preamble.
	ErrMissingPreamble = errors.New("missing preamble")

	// ErrNoHeader indicates a spreadsheet without any row.
	ErrNoHeader = errors.New("missing header row")
)

// ParseError describes a field of an input file that could not be parsed.
type ParseError struct {
	Source string
	Line   int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: field %s %q: %v", e.Source, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
