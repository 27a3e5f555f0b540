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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/natalidad/birthtrend/data"
	"github.com/natalidad/birthtrend/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type ageRow struct {
	year   any
	births any
	group  string
}

func writeAgeFile(t *testing.T, dir string, rows []ageRow) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Año")
	f.SetCellValue(sheetName, "B1", "Nacidos vivos")
	f.SetCellValue(sheetName, "C1", "Grupo de edad")
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, cell(t, 1, row), r.year)
		f.SetCellValue(sheetName, cell(t, 2, row), r.births)
		f.SetCellValue(sheetName, cell(t, 3, row), r.group)
	}

	path := filepath.Join(dir, "ages.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func cell(t *testing.T, col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return name
}

func writeFacilityFile(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	content := "Nacimientos según local de ocurrencia del parto\n" +
		"Chile\n" +
		"Año;Total;Hospital público;Clínica privada;Vivienda;Otro;;\n" +
		strings.Join(lines, "\n") +
		"\n\nNota: cifras 2012 provisorias\n"
	path := filepath.Join(dir, "facility.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeFixtures(t *testing.T) (string, string) {
	dir := t.TempDir()
	agePath := writeAgeFile(t, dir, []ageRow{
		{2010, 100, "15 - 19"},
		{2010, 900, "20 - 24"},
		{2011, 110, "15 - 19"},
		{2011, "-", "20 - 24"},
		{2012, 120, "15 - 19"},
		{"-", "-", "15 - 19"},
	})
	facilityPath := writeFacilityFile(t, dir,
		"2010;1.500;500;900;50;50;;",
		"2011;1.400;450;850;-;100;;",
		"2012;1.300;400;800;50;50;;",
	)
	return agePath, facilityPath
}

// execute runs the root command with args on fresh flag values.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	ageFile = defaultAgeFile
	facilityFile = defaultFacilityFile
	footnoteMarker = ingest.DefaultFootnoteMarker
	strict = false
	verbose = false
	noProgress = false
	ageGroup = defaultAgeGroup
	format = formatText
	showStats = false
	recordsFormat = formatYAML

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--no-progress"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	stdout, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath)
	require.NoError(t, err)

	assert.Equal(t, "Tendencia nacimientos con madres de 15-19: aumenta (pendiente 10.00)\n"+
		"Tendencia nacimientos en hospitales públicos: disminuye (pendiente -50.00)\n", stdout)
}

func TestRootCmd_otherAgeGroup(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	stdout, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "--age-group", "20 - 24")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Tendencia nacimientos con madres de 20-24: disminuye (pendiente 0.00)\n"))
}

func TestRootCmd_yaml(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	stdout, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "--format", "yaml")
	require.NoError(t, err)

	var report data.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
	assert.True(t, strings.HasPrefix(report.ID, "urn:uuid:"))
	assert.Equal(t, "15 - 19", report.AgeGroup)
	require.Len(t, report.Trends, 2)
	assert.InDelta(t, 10.0, report.Trends[0].Slope, 1e-9)
	assert.Equal(t, "increases", report.Trends[0].Direction)
	assert.Equal(t, 3, report.Trends[0].Points)
	assert.InDelta(t, -50.0, report.Trends[1].Slope, 1e-9)
	assert.Equal(t, "decreases", report.Trends[1].Direction)
}

func TestRootCmd_json(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	stdout, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "-o", "json")
	require.NoError(t, err)

	var report data.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Trends, 2)
	assert.Equal(t, "public-hospital", report.Trends[1].Series)
}

func TestRootCmd_invalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml")

	assert.ErrorContains(t, err, "invalid format")
}

func TestRootCmd_stats(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	_, stderr, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "--stats")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Records		[age, facility]		5, 3")
	assert.Contains(t, stderr, "Rows		[skipped]		1")
}

func TestRootCmd_verboseLogsSkippedRows(t *testing.T) {
	dir := t.TempDir()
	agePath := writeAgeFile(t, dir, []ageRow{
		{2010, 100, "15 - 19"},
		{"Total", 100, "15 - 19"},
		{2011, 90, "15 - 19"},
	})
	facilityPath := writeFacilityFile(t, dir, "2010;1;1;1;1;1;;", "2011;1;2;1;1;1;;")

	stdout, stderr, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "-v")
	require.NoError(t, err)

	assert.Contains(t, stdout, "madres de 15-19: disminuye (pendiente -10.00)")
	assert.Contains(t, stdout, "hospitales públicos: aumenta (pendiente 1.00)")
	assert.Contains(t, stderr, "skipping row")
}

func TestRootCmd_strict(t *testing.T) {
	dir := t.TempDir()
	agePath := writeAgeFile(t, dir, []ageRow{
		{2010, 100, "15 - 19"},
		{"Total", 100, "15 - 19"},
	})
	facilityPath := writeFacilityFile(t, dir, "2010;1;1;1;1;1;;")

	_, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "--strict")

	assert.ErrorIs(t, err, ingest.ErrMalformedYear)
}

func TestRootCmd_malformedFacilityYear(t *testing.T) {
	agePath, _ := writeFixtures(t)
	facilityPath := writeFacilityFile(t, t.TempDir(), "2010;1;1;1;1;1;;", "Total;1;1;1;1;1;;")

	_, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath)

	assert.ErrorIs(t, err, ingest.ErrMalformedYear)
	assert.ErrorContains(t, err, "delivery facility dataset")
}

func TestRootCmd_missingAgeFile(t *testing.T) {
	_, facilityPath := writeFixtures(t)

	_, _, err := execute(t, "--age-file", filepath.Join(t.TempDir(), "missing.xlsx"), "--facility-file", facilityPath)

	assert.ErrorContains(t, err, "maternal age dataset")
}

func TestRootCmd_unknownAgeGroup(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	_, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "--age-group", "45 - 49")

	assert.ErrorContains(t, err, `no live births found for age group "45 - 49"`)
}

func TestRootCmd_withProgress(t *testing.T) {
	agePath, facilityPath := writeFixtures(t)

	stdout, _, err := execute(t, "--age-file", agePath, "--facility-file", facilityPath, "--no-progress=false")
	require.NoError(t, err)

	assert.Contains(t, stdout, "pendiente 10.00")
}

func TestRootCmd_rejectsArgs(t *testing.T) {
	_, _, err := execute(t, "unexpected")

	assert.Error(t, err)
}
