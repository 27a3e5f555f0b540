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

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/natalidad/birthtrend/data"
	"github.com/natalidad/birthtrend/ingest"
	"github.com/natalidad/birthtrend/util"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	publicLabel = "Tendencia nacimientos en hospitales públicos"
	agePrefix   = "Tendencia nacimientos con madres de "
)

var ageGroup string
var format string
var showStats bool

type datasets struct {
	age      []data.AgeRecord
	facility []data.FacilityRecord
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	if err := checkFormat(format, formatText, formatYAML, formatJSON); err != nil {
		return err
	}

	start := time.Now()
	log := util.NewLogger(cmd.ErrOrStderr(), verbose)
	stats := &util.CommandStats{}

	ds, err := loadDatasets(log, stats, progressOutput(cmd))
	if err != nil {
		return err
	}

	report, err := buildReport(ds, ageGroup)
	if err != nil {
		return err
	}
	log.Debug("computed trends", "id", report.ID, "trends", len(report.Trends))

	if err := writeReport(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}

	stats.TotalDuration = time.Since(start)
	if showStats {
		fmt.Fprint(cmd.ErrOrStderr(), stats.String())
	}
	return nil
}

func progressOutput(cmd *cobra.Command) io.Writer {
	if noProgress {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

// loadDatasets reads both input files one after the other.
func loadDatasets(log *slog.Logger, stats *util.CommandStats, progressOut io.Writer) (*datasets, error) {
	progress := mpb.New(mpb.WithOutput(progressOut), mpb.WithWidth(40))
	bar := progress.AddBar(2,
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name("reading datasets "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	defer progress.Wait()

	ds := &datasets{}

	readStart := time.Now()
	age, skipped, err := ingest.ReadAgeFile(ageFile, ingest.AgeOptions{Strict: strict, Logger: log})
	if err != nil {
		bar.Abort(true)
		return nil, fmt.Errorf("could not read the maternal age dataset: %w", err)
	}
	ds.age = age
	stats.AgeRecords = len(age)
	stats.SkippedRows = skipped
	recordRead(stats, ageFile, readStart)
	log.Debug("read maternal age dataset", "file", ageFile, "records", len(age), "skipped", skipped)
	bar.Increment()

	readStart = time.Now()
	facility, err := ingest.ReadFacilityFile(facilityFile, ingest.FacilityOptions{FootnoteMarker: footnoteMarker})
	if err != nil {
		bar.Abort(true)
		return nil, fmt.Errorf("could not read the delivery facility dataset: %w", err)
	}
	ds.facility = facility
	stats.FacilityRecords = len(facility)
	recordRead(stats, facilityFile, readStart)
	log.Debug("read delivery facility dataset", "file", facilityFile, "records", len(facility))
	bar.Increment()

	return ds, nil
}

func recordRead(stats *util.CommandStats, path string, start time.Time) {
	stats.Files++
	stats.ReadDurations = append(stats.ReadDurations, time.Since(start).Seconds())
	if info, err := os.Stat(path); err == nil {
		stats.TotalBytesIn += info.Size()
	}
}

// buildReport computes the maternal age trend of the given group and the
// public hospital trend.
func buildReport(ds *datasets, group string) (data.Report, error) {
	young := data.AgeGroupSeries(ds.age, group)
	if len(young) == 0 {
		return data.Report{}, fmt.Errorf("no live births found for age group %q", group)
	}
	public := data.PublicSeries(ds.facility)
	if len(public) == 0 {
		return data.Report{}, errors.New("no public hospital births found")
	}

	id, err := randomUrl()
	if err != nil {
		return data.Report{}, err
	}

	return data.Report{
		ID:       id,
		AgeGroup: group,
		Trends: []data.Trend{
			newTrend(agePrefix+strings.ReplaceAll(group, " ", ""), "age-group", young),
			newTrend(publicLabel, "public-hospital", public),
		},
	}, nil
}

func newTrend(label, name string, series data.Series) data.Trend {
	xs, ys := series.XY()
	slope := util.Slope(xs, ys)
	return data.Trend{
		Label:     label,
		Series:    name,
		Points:    len(series),
		Slope:     slope,
		Direction: string(util.TrendDirection(slope)),
	}
}

func randomUrl() (string, error) {
	myUuid, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return "urn:uuid:" + myUuid.String(), nil
}
