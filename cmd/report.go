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
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"
	"github.com/natalidad/birthtrend/data"
	"github.com/natalidad/birthtrend/util"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

//go:embed report-template.tmpl
var reportTemplate string

var directionWords = map[string]string{
	string(util.Increases): "aumenta",
	string(util.Decreases): "disminuye",
}

func renderReport(wr io.Writer, report data.Report) error {
	funcMap := template.FuncMap{
		"word": func(direction string) string {
			return directionWords[direction]
		},
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate))

	return tmpl.Execute(wr, report)
}

func writeReport(wr io.Writer, report data.Report, format string) error {
	if format == formatText {
		return renderReport(wr, report)
	}
	return writeStructured(wr, report, format)
}

// writeStructured encodes v as YAML or JSON.
func writeStructured(wr io.Writer, v any, format string) error {
	switch format {
	case formatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = wr.Write(out)
		return err
	case formatJSON:
		encoder := json.NewEncoder(wr)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
