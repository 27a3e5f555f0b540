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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultAgeFile      = "nac_viv_annio__g_edad_limpio.xlsx"
	defaultFacilityFile = "loc_ocurr_part_annio__l_ocu_limpio.csv"
	defaultAgeGroup     = "15 - 19"
)

var ageFile string
var facilityFile string
var footnoteMarker string
var strict bool
var verbose bool
var noProgress bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "birthtrend",
	Short: "Computes birth trends from the national vital statistics tables",
	Long: `birthtrend reads the live births by maternal age group (XLSX) and the
births by delivery facility (semicolon separated text) and prints the linear
trend of births to mothers aged 15-19 and of births in public hospitals.

Without flags both files are read from the working directory.`,
	Version:       "0.3.0",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalysis,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ageFile, "age-file", defaultAgeFile, "XLSX workbook with live births by maternal age group")
	rootCmd.PersistentFlags().StringVar(&facilityFile, "facility-file", defaultFacilityFile, "semicolon separated file with births by delivery facility")
	rootCmd.PersistentFlags().StringVar(&footnoteMarker, "footnote-marker", "Nota", "prefix of the first note line after the facility data")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on malformed spreadsheet rows instead of skipping them")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped rows and other details to stderr")
	rootCmd.PersistentFlags().BoolVarP(&noProgress, "no-progress", "", false, "don't show progress bar")

	rootCmd.Flags().StringVar(&ageGroup, "age-group", defaultAgeGroup, "age group label of the maternal age trend")
	rootCmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text, yaml or json")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print read statistics to stderr")
}
