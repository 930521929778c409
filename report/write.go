// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/retopo/math32"
)

// Format is a report output format.
type Format int32

const (
	// Text is a styled, human readable summary.
	Text Format = iota

	// JSON is indented JSON.
	JSON

	// YAML is YAML.
	YAML

	// TOML is TOML.
	TOML
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatFromString returns the [Format] with the given name.
func FormatFromString(s string) (Format, error) {
	for _, f := range []Format{Text, JSON, YAML, TOML} {
		if f.String() == s {
			return f, nil
		}
	}
	return Text, fmt.Errorf("report: unknown format %q", s)
}

// Write writes the report to the writer in the given format. For [Text],
// at most maxList indexes are listed per selection, or all if it is 0.
func (r *Report) Write(w io.Writer, format Format, maxList int) error {
	switch format {
	case Text:
		return r.WriteText(w, maxList)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("report.Write: unknown format %v", format)
}

// textStyles are the styles of a text report.
type textStyles struct {
	title, label, count, warn, muted lipgloss.Style
}

func newTextStyles(rd *lipgloss.Renderer) *textStyles {
	return &textStyles{
		title: rd.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label: rd.NewStyle().Width(14).Foreground(lipgloss.Color("#6B7280")),
		count: rd.NewStyle().Bold(true),
		warn:  rd.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		muted: rd.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// WriteText writes the report as a styled summary, with colors only
// if the writer is a terminal that supports them.
func (r *Report) WriteText(w io.Writer, maxList int) error {
	st := newTextStyles(lipgloss.NewRenderer(w))
	var b strings.Builder
	name := r.Name
	if name == "" {
		name = "mesh"
	}
	fmt.Fprintf(&b, "%s: %d verts, %d edges, %d faces\n", st.title.Render(name), r.Counts.Verts, r.Counts.Edges, r.Counts.Faces)
	line := func(label, value string) {
		b.WriteString(st.label.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	if r.Counts.Verts > 0 {
		line("bounds", fmtVec(r.Bounds.Min)+" to "+fmtVec(r.Bounds.Max))
	}
	line("valence", fmt.Sprintf("regular %d  pole %d  irregular-low %d", r.Valence.Regular, r.Valence.Pole, r.Valence.IrregularLow))
	line("valences", fmtBins(r.ValenceHistogram))
	line("arities", fmtBins(r.ArityHistogram))

	// items lists the given indexes, up to maxList of them.
	items := func(idxs []string) string {
		shown := idxs
		if maxList > 0 && len(shown) > maxList {
			shown = shown[:maxList]
		}
		v := strings.Join(shown, " ")
		if len(shown) < len(idxs) {
			v += st.muted.Render(fmt.Sprintf(" ... (%d more)", len(idxs)-len(shown)))
		}
		return v
	}
	list := func(label string, idxs []string, problem bool) {
		cnt := st.count
		if problem && len(idxs) > 0 {
			cnt = st.warn
		}
		v := cnt.Render(fmt.Sprint(len(idxs)))
		if len(idxs) > 0 {
			v += "  " + items(idxs)
		}
		line(label, v)
	}
	list("poles", itoas(r.Poles), false)
	list("loose", itoas(r.Loose), true)
	list("n-gons", itoas(r.Ngons), true)
	list("non-quads", itoas(r.NonQuads), false)
	list("triangles", itoas(r.Triangles), false)
	list("sharp corners", itoas(r.SharpCorners), false)
	list("sharp edges", itoas(r.SharpEdges), false)
	list("boundary", itoas(r.Boundary), false)
	list("non-manifold", itoas(r.NonManifold), true)
	list("wire", itoas(r.Wire), false)
	for _, l := range r.Loops {
		kind := "open"
		if l.Closed {
			kind = "closed"
		}
		line(fmt.Sprintf("loop %d", l.Seed), fmt.Sprintf("%s %s  %s", st.count.Render(fmt.Sprint(len(l.Edges))), kind, items(itoas(l.Edges))))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func itoas[T ~int](idxs []T) []string {
	s := make([]string, len(idxs))
	for i, v := range idxs {
		s[i] = fmt.Sprint(int(v))
	}
	return s
}

func fmtVec(v math32.Vector3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func fmtBins(bins []Bin) string {
	if len(bins) == 0 {
		return "-"
	}
	s := make([]string, len(bins))
	for i, bn := range bins {
		s[i] = fmt.Sprintf("%d:%d", bn.Value, bn.Count)
	}
	return strings.Join(s, " ")
}
