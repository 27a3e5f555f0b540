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

package util

import (
	"fmt"
	"strings"
	"time"
)

// CommandStats collects figures about one analysis run.
type CommandStats struct {
	Files           int
	TotalBytesIn    int64
	AgeRecords      int
	FacilityRecords int
	SkippedRows     int
	ReadDurations   []float64
	TotalDuration   time.Duration
}

func (cs *CommandStats) String() string {

	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Files		[total]			%d\n", cs.Files))
	builder.WriteString(fmt.Sprintf("Records		[age, facility]		%d, %d\n", cs.AgeRecords, cs.FacilityRecords))
	builder.WriteString(fmt.Sprintf("Rows		[skipped]		%d\n", cs.SkippedRows))
	builder.WriteString(fmt.Sprintf("Duration	[total]			%s\n", FmtDurationHumanReadable(cs.TotalDuration)))

	if len(cs.ReadDurations) > 0 {
		p := CalculateDurationStatistics(cs.ReadDurations)
		builder.WriteString(fmt.Sprintf("Read Latencies	[mean, max]		%s, %s\n", p.Mean, p.Max))
	}

	bytesPerFile := float32(0)
	if cs.Files > 0 {
		bytesPerFile = float32(cs.TotalBytesIn) / float32(cs.Files)
	}
	builder.WriteString(fmt.Sprintf("Bytes In	[total, mean]		%s, %s\n", FmtBytesHumanReadable(float32(cs.TotalBytesIn)), FmtBytesHumanReadable(bytesPerFile)))

	return builder.String()
}
