package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/henderiw/shipzone/pkg/zone"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type outputRange struct {
	Lower int `json:"lower" yaml:"lower"`
	Upper int `json:"upper" yaml:"upper"`
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q, expected %s, %s or %s", format, outputText, outputJSON, outputYAML)
}

func writeRanges(w io.Writer, format string, rr []zone.Range) error {
	out := make([]outputRange, 0, len(rr))
	for _, r := range rr {
		out = append(out, outputRange{Lower: r.Lower().Value(), Upper: r.Upper().Value()})
	}

	switch format {
	case outputText:
		for _, r := range out {
			if _, err := fmt.Fprintf(w, "[ %d, %d ]\n", r.Lower, r.Upper); err != nil {
				return err
			}
		}
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	return validateOutput(format)
}
