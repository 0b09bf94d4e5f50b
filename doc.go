// Package fmtscan extracts typed values from text using format templates.
//
// A template is literal text with brace placeholders, each optionally
// carrying a type specifier:
//
//	"sensor {%s} temp={%f}C seq={%u}"
//
// Each subpackage can be used independently:
//
//   - template: Compile templates and inspect placeholders and separators
//   - decode: Numeric and text decoding into sized Go kinds
//   - scan: Resolve placeholder spans in a source and decode them
//   - definition: Named templates loaded from YAML, TOML or JSON files
//
// # Quick Start
//
// Scanning:
//
//	import "github.com/randalmurphal/fmtscan/scan"
//	t := template.MustCompile("temp={%f}C id={%u}")
//	res, _ := scan.Scan(t, "temp=21.5C id=7", decode.Float64, decode.Uint32)
//
// Typed destinations:
//
//	var temp float64
//	var id uint32
//	err := scan.Into(t, "temp=21.5C id=7", &temp, &id)
//
// Definition files:
//
//	import "github.com/randalmurphal/fmtscan/definition"
//	set, _ := definition.LoadSet("scans.yaml")
//	res, _ := set.Scan("reading", line)
//
// The fmtscan command in cmd/fmtscan exposes the same operations on the
// command line.
package fmtscan
