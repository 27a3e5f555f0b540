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

package data

// AgeRecord is one (year, age group) cell pair of the maternal age spreadsheet.
// A nil LiveBirths means the source marked the count as unavailable.
type AgeRecord struct {
	Year       int    `json:"year" yaml:"year"`
	LiveBirths *int   `json:"liveBirths" yaml:"liveBirths"`
	AgeGroup   string `json:"ageGroup" yaml:"ageGroup"`
}

// FacilityRecord is one year row of the delivery facility file. Nil counts
// are unavailable measurements.
type FacilityRecord struct {
	Year      int      `json:"year" yaml:"year"`
	Total     *float64 `json:"total" yaml:"total"`
	Public    *float64 `json:"public" yaml:"public"`
	Private   *float64 `json:"private" yaml:"private"`
	HomeBirth *float64 `json:"homeBirth" yaml:"homeBirth"`
	Other     *float64 `json:"other" yaml:"other"`

	// Extra1 and Extra2 are trailing columns kept verbatim.
	Extra1 string `json:"extra1,omitempty" yaml:"extra1,omitempty"`
	Extra2 string `json:"extra2,omitempty" yaml:"extra2,omitempty"`
}
