package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/fmtscan/scan"
	"github.com/randalmurphal/fmtscan/template"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Width(4)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Width(9)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// placeholderReport describes one placeholder of a compiled template.
type placeholderReport struct {
	Index     int    `json:"index" yaml:"index"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
	Specifier string `json:"specifier,omitempty" yaml:"specifier,omitempty"`
	Kind      string `json:"default_kind" yaml:"default_kind"`
	Before    string `json:"separator_before" yaml:"separator_before"`
	After     string `json:"separator_after" yaml:"separator_after"`
}

type checkReport struct {
	Template     string              `json:"template" yaml:"template"`
	Placeholders []placeholderReport `json:"placeholders" yaml:"placeholders"`
}

// valueReport describes one decoded value.
type valueReport struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
	Value any    `json:"value" yaml:"value"`
}

type scanReport struct {
	Definition string        `json:"definition,omitempty" yaml:"definition,omitempty"`
	Values     []valueReport `json:"values" yaml:"values"`
}

func newCheckReport(t *template.Template) checkReport {
	kinds := scan.DefaultKinds(t)
	report := checkReport{
		Template:     t.String(),
		Placeholders: make([]placeholderReport, t.NumPlaceholders()),
	}
	for i, p := range t.Placeholders() {
		report.Placeholders[i] = placeholderReport{
			Index:     i,
			Start:     p.Start,
			End:       p.End,
			Specifier: p.Spec.String(),
			Kind:      kinds[i].String(),
			Before:    t.SeparatorBefore(i),
			After:     t.SeparatorAfter(i),
		}
	}
	return report
}

func newScanReport(name, src string, res scan.Result) scanReport {
	report := scanReport{
		Definition: name,
		Values:     make([]valueReport, res.Len()),
	}
	for i, v := range res.Values() {
		span := res.Span(i)
		report.Values[i] = valueReport{
			Index: i,
			Kind:  v.Kind().String(),
			Start: span.Start,
			End:   span.End,
			Text:  span.Slice(src),
			Value: v.Interface(),
		}
	}
	return report
}

// printer writes reports in the configured format.
type printer struct {
	w      io.Writer
	format OutputFormat
}

func (p printer) print(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	default:
		return p.text(v)
	}
}

func (p printer) text(v any) error {
	switch r := v.(type) {
	case checkReport:
		fmt.Fprintln(p.w, headerStyle.Render("template"), valueStyle.Render(r.Template))
		if len(r.Placeholders) == 0 {
			fmt.Fprintln(p.w, mutedStyle.Render("no placeholders"))
		}
		for _, ph := range r.Placeholders {
			spec := ph.Specifier
			if spec == "" {
				spec = "{}"
			}
			fmt.Fprintln(p.w,
				indexStyle.Render(fmt.Sprintf("#%d", ph.Index)),
				kindStyle.Render(ph.Kind),
				valueStyle.Render(spec),
				mutedStyle.Render(fmt.Sprintf("at %d..%d, after %q, before %q", ph.Start, ph.End, ph.Before, ph.After)))
		}

	case scanReport:
		if r.Definition != "" {
			fmt.Fprintln(p.w, headerStyle.Render(r.Definition))
		}
		for _, val := range r.Values {
			fmt.Fprintln(p.w,
				indexStyle.Render(fmt.Sprintf("#%d", val.Index)),
				kindStyle.Render(val.Kind),
				valueStyle.Render(shorten(fmt.Sprint(val.Value), maxTextValue)),
				mutedStyle.Render(fmt.Sprintf("[%d:%d]", val.Start, val.End)))
		}

	case []string:
		for _, s := range r {
			fmt.Fprintln(p.w, valueStyle.Render(s))
		}

	default:
		fmt.Fprintln(p.w, v)
	}
	return nil
}

// maxTextValue is the rune limit for values in text output.
const maxTextValue = 60

// shorten cuts the middle out of s so it fits in max runes, keeping the
// start and the end.
func shorten(s string, max int) string {
	const marker = "..."

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	keep := (max - len(marker)) / 2
	if keep <= 0 {
		return marker
	}

	var sb strings.Builder
	sb.WriteString(string(runes[:keep]))
	sb.WriteString(marker)
	sb.WriteString(string(runes[len(runes)-keep:]))
	return sb.String()
}
