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
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is the token the statistics office uses for unavailable values.
const Placeholder = "-"

func isMissing(s string) bool {
	return s == "" || s == Placeholder
}

// ParseLocaleDecimal parses a number written with "." as thousands separator
// and "," as decimal point, so "1.234,5" is 1234.5. The placeholder and the
// empty string yield nil.
func ParseLocaleDecimal(s string) (*float64, error) {
	v, err := parseLocaleDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, s)
	}
	return v, nil
}

func parseLocaleDecimal(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return nil, nil
	}
	normalized := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil, ErrMalformedNumber
	}
	return &v, nil
}

// parseCount parses an integer count. The placeholder and the empty string
// yield nil.
func parseCount(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, ErrMalformedNumber
	}
	return &v, nil
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrMalformedYear
	}
	return year, nil
}
