// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/claceio/passmeter/internal/strength"
	"github.com/claceio/passmeter/internal/system"
	"github.com/urfave/cli/v2"
)

var ansiColors = map[strength.Color]string{
	strength.ColorGreen:  "\033[32m",
	strength.ColorOrange: "\033[33m",
	strength.ColorRed:    "\033[31m",
}

const ansiReset = "\033[0m"

// strengthLabel returns the label with the marker and color when writing to a terminal
func strengthLabel(w io.Writer, report strength.Report) string {
	if !isTerminal(w) {
		return string(report.Strength)
	}
	return ansiColors[report.StatusColor] + report.Label() + ansiReset
}

func encodeJSON[T any](w io.Writer, format string, values []T, single bool) error {
	enc := json.NewEncoder(w)
	switch format {
	case FORMAT_JSON:
		enc.SetIndent("", "  ")
		if single && len(values) == 1 {
			return enc.Encode(values[0])
		}
		return enc.Encode(values)
	case FORMAT_JSONL:
		for _, v := range values {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
	case FORMAT_JSONL_PRETTY:
		enc.SetIndent("", "  ")
		for _, v := range values {
			if err := enc.Encode(v); err != nil {
				return err
			}
			fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

func renderTemplate[T any](w io.Writer, tmpl string, values []T) error {
	for _, v := range values {
		if err := system.RenderTemplate(w, tmpl, v); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printReport(cCtx *cli.Context, report strength.Report, format, tmpl string) error {
	w := cCtx.App.Writer
	if tmpl != "" {
		return renderTemplate(w, tmpl, []strength.Report{report})
	}

	switch format {
	case FORMAT_JSON, FORMAT_JSONL, FORMAT_JSONL_PRETTY:
		return encodeJSON(w, format, []strength.Report{report}, true)
	case FORMAT_BASIC:
		fmt.Fprintf(w, "%d %s\n", report.Score, report.Strength)
	case FORMAT_TABLE:
		fmt.Fprintf(w, "Strength: %s\n", strengthLabel(w, report))
		fmt.Fprintf(w, "Score   : %d/%d\n", report.Score, strength.MAX_SCORE)
		fmt.Fprintf(w, "Status  : %s\n", report.StatusMessage)
		if len(report.Feedback) > 0 {
			fmt.Fprintf(w, "\nImprovement Suggestions:\n")
			for _, suggestion := range report.Feedback {
				fmt.Fprintf(w, "  - %s\n", suggestion)
			}
		}
	case FORMAT_CSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{strconv.Itoa(report.Score), string(report.Strength), string(report.StatusColor),
			report.StatusMessage, strings.Join(report.Feedback, "; ")})
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown format %s", format)
	}
	return nil
}

func printGenerated(cCtx *cli.Context, results []generatedPassword, format, tmpl string) error {
	w := cCtx.App.Writer
	if tmpl != "" {
		return renderTemplate(w, tmpl, results)
	}

	switch format {
	case FORMAT_JSON, FORMAT_JSONL, FORMAT_JSONL_PRETTY:
		return encodeJSON(w, format, results, false)
	case FORMAT_BASIC:
		for _, result := range results {
			fmt.Fprintln(w, result.Password)
		}
	case FORMAT_TABLE:
		for _, result := range results {
			if result.Report == nil {
				fmt.Fprintf(w, "%s\n", result.Password)
				continue
			}
			fmt.Fprintf(w, "%-*s  %d %s\n", result.Length, result.Password, result.Report.Score, strengthLabel(w, *result.Report))
		}
	case FORMAT_CSV:
		cw := csv.NewWriter(w)
		for _, result := range results {
			row := []string{result.Password, strconv.Itoa(result.Length)}
			if result.Report != nil {
				row = append(row, strconv.Itoa(result.Report.Score), string(result.Report.Strength))
			}
			cw.Write(row)
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown format %s", format)
	}
	return nil
}
