// Package report stores the results of a benchmark run as YAML, TOML or JSON and renders them as a text table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/growstack/internal/bench"
	"github.com/iotaledger/hive.go/ierrors"
)

// Format is the encoding of a report file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned if a report format is not supported.
var ErrUnknownFormat = ierrors.New("unknown report format")

// document is the root of a report file. TOML documents can not have an array as their root.
type document struct {
	Results []*bench.Result `json:"results" yaml:"results" toml:"results"`
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case FormatYAML, FormatTOML, FormatJSON:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", ierrors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// FormatFromPath derives the Format from the extension of the given path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Marshal encodes the results in the given Format.
func Marshal(format Format, results []*bench.Result) ([]byte, error) {
	doc := &document{Results: results}

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, ierrors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// WriteFile writes the results to the given path. The Format is derived from the extension of the path if format
// is empty.
func WriteFile(path string, format Format, results []*bench.Result) error {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	data, err := Marshal(format, results)
	if err != nil {
		return ierrors.Wrapf(err, "failed to encode %s report", format)
	}

	//nolint:gosec // reports are not sensitive
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ierrors.Wrapf(err, "failed to write report to %s", path)
	}

	return nil
}

// Table renders the results as an aligned text table.
func Table(results []*bench.Result) []string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, fmt.Sprintf("%-16s %6s %13s %14s %16s", "case", "factor", "reallocations", "finalCapacity", "ns/round"))

	for _, result := range results {
		factor := "-"
		if result.GrowthFactor != 0 {
			factor = fmt.Sprintf("%.2f", result.GrowthFactor)
		}

		lines = append(lines, fmt.Sprintf("%-16s %6s %13d %14d %16d", result.Case, factor, result.Reallocations, result.FinalCapacity, result.NanosecondsPerRound))
	}

	return lines
}

// Print writes the table of the results to the given writer.
func Print(w io.Writer, results []*bench.Result) error {
	for _, line := range Table(results) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return ierrors.Wrap(err, "failed to print results")
		}
	}

	return nil
}
