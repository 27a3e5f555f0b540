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
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/natalidad/birthtrend/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsCmd_age(t *testing.T) {
	agePath, _ := writeFixtures(t)

	stdout, _, err := execute(t, "records", "age", "--age-file", agePath)
	require.NoError(t, err)

	var records []data.AgeRecord
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 5)
	assert.Equal(t, 2010, records[0].Year)
	require.NotNil(t, records[0].LiveBirths)
	assert.Equal(t, 100, *records[0].LiveBirths)
	assert.Equal(t, "15 - 19", records[0].AgeGroup)
	assert.Nil(t, records[3].LiveBirths)
}

func TestRecordsCmd_facilityJSON(t *testing.T) {
	_, facilityPath := writeFixtures(t)

	stdout, _, err := execute(t, "records", "facility", "--facility-file", facilityPath, "--format", "json")
	require.NoError(t, err)

	var records []data.FacilityRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 3)
	assert.Equal(t, 1500.0, *records[0].Total)
	assert.Nil(t, records[1].HomeBirth)
	assert.Equal(t, 400.0, *records[2].Public)
}

func TestRecordsCmd_invalidDataset(t *testing.T) {
	_, _, err := execute(t, "records", "births")

	assert.Error(t, err)
}

func TestRecordsCmd_textFormatNotSupported(t *testing.T) {
	_, _, err := execute(t, "records", "age", "--format", "text")

	assert.ErrorContains(t, err, "invalid format")
}
