// Copyright 2025 go-highway Authors
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

// Package report renders accumulation results as an aligned table.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-accumulate/accum"
)

// Relative error thresholds for the colored error column.
const (
	warnRelError = 1e-12
	badRelError  = 1e-6
)

// Header describes the run a table was produced from.
type Header struct {
	Samples     int
	Seed        uint32
	Reference   float64
	Compensated float64
}

// Options controls rendering.
type Options struct {
	// NoColor disables ANSI colors in the error column.
	NoColor bool

	// Language selects digit grouping for counts and integer sums.
	// The zero value renders as language.English.
	Language language.Tag
}

var columns = []string{"kind", "order", "workers", "sum", "abs error", "rel error"}

// Write renders h followed by one row per result.
func Write(w io.Writer, h Header, results []accum.Result, opts Options) error {
	lang := opts.Language
	if lang == language.Und {
		lang = language.English
	}
	p := message.NewPrinter(lang)

	if _, err := p.Fprintf(w, "samples: %d  seed: %d\n", h.Samples, h.Seed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "float64 forward reference: %s\ncompensated sum:           %s\n\n",
		formatFloat(h.Reference), formatFloat(h.Compensated)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	title := cases.Title(lang)
	heads := make([]string, len(columns))
	for i, c := range columns {
		heads[i] = title.String(c)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(heads, "\t")); err != nil {
		return err
	}

	for _, r := range results {
		sum := r.Native()
		if r.Kind.IsInteger() {
			sum = p.Sprintf("%d", r.Int)
		}
		rel := severity(r.RelError, opts.NoColor).Sprintf("%.3e", r.RelError)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.3e\t%s\n",
			r.Kind, r.Order, r.Workers, sum, r.AbsError, rel); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// severity picks the color for a relative error. The rel error column is
// last so escape codes do not skew tabwriter's alignment.
func severity(rel float64, noColor bool) *color.Color {
	var c *color.Color
	switch {
	case rel < warnRelError:
		c = color.New(color.FgGreen)
	case rel < badRelError:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	if noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.17g", f)
}
