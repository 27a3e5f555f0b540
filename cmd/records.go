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
	"github.com/natalidad/birthtrend/ingest"
	"github.com/natalidad/birthtrend/util"
	"github.com/spf13/cobra"
)

var recordsFormat string

var recordsCmd = &cobra.Command{
	Use:   "records [age|facility]",
	Short: "Prints the normalized records of one dataset",
	Long: `Reads one of the two input files and prints the records the analysis
works on. Unavailable counts are printed as null.`,
	ValidArgs: []string{"age", "facility"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(recordsFormat, formatYAML, formatJSON); err != nil {
			return err
		}

		log := util.NewLogger(cmd.ErrOrStderr(), verbose)
		switch args[0] {
		case "age":
			records, skipped, err := ingest.ReadAgeFile(ageFile, ingest.AgeOptions{Strict: strict, Logger: log})
			if err != nil {
				return err
			}
			log.Debug("read maternal age dataset", "file", ageFile, "records", len(records), "skipped", skipped)
			return writeStructured(cmd.OutOrStdout(), records, recordsFormat)
		default:
			records, err := ingest.ReadFacilityFile(facilityFile, ingest.FacilityOptions{FootnoteMarker: footnoteMarker})
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), records, recordsFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.Flags().StringVarP(&recordsFormat, "format", "o", formatYAML, "output format: yaml or json")
}
