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

import "sort"

// Point is a single observation of a yearly series.
type Point struct {
	Year  int
	Value float64
}

// Series is an ordered list of yearly observations.
type Series []Point

// XY returns the years and values of s as parallel vectors.
func (s Series) XY() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i] = float64(p.Year)
		ys[i] = p.Value
	}
	return xs, ys
}

// Trend is the linear trend computed for one series.
type Trend struct {
	Label     string  `json:"label" yaml:"label"`
	Series    string  `json:"series" yaml:"series"`
	Points    int     `json:"points" yaml:"points"`
	Slope     float64 `json:"slope" yaml:"slope"`
	Direction string  `json:"direction" yaml:"direction"`
}

// Report holds the outcome of one analysis run.
type Report struct {
	ID       string  `json:"id" yaml:"id"`
	AgeGroup string  `json:"ageGroup" yaml:"ageGroup"`
	Trends   []Trend `json:"trends" yaml:"trends"`
}

// AgeGroupSeries returns the live births of the given age group sorted by
// year. Records without a count are left out; when a year appears twice the
// later record wins.
func AgeGroupSeries(records []AgeRecord, group string) Series {
	byGroup := make(map[string]map[int]int)
	for _, r := range records {
		if r.LiveBirths == nil {
			continue
		}
		years, ok := byGroup[r.AgeGroup]
		if !ok {
			years = make(map[int]int)
			byGroup[r.AgeGroup] = years
		}
		years[r.Year] = *r.LiveBirths
	}

	years := byGroup[group]
	series := make(Series, 0, len(years))
	for year, births := range years {
		series = append(series, Point{Year: year, Value: float64(births)})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})
	return series
}

// PublicSeries returns the public hospital births in file order, skipping
// years where the count is unavailable.
func PublicSeries(records []FacilityRecord) Series {
	series := make(Series, 0, len(records))
	for _, r := range records {
		if r.Public == nil {
			continue
		}
		series = append(series, Point{Year: r.Year, Value: *r.Public})
	}
	return series
}
