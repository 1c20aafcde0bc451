// Package render turns gift cycles into Graphviz diagrams.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// Options configures cycle diagram rendering.
type Options struct {
	// Partnerships draws dashed undirected edges between declared partners,
	// making it easy to see that no partner pair sits on a gift edge.
	Partnerships []exchange.Partnership
}

// ToDOT converts a cycle to Graphviz DOT format. The circo layout places the
// participants on a ring, which matches the shape of the draw. The resulting
// DOT string can be rendered with [RenderSVG].
func ToDOT(cycle exchange.Cycle, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, giver := range cycle.Givers() {
		fmt.Fprintf(&buf, "  %q;\n", giver)
	}

	buf.WriteString("\n")
	for _, a := range cycle {
		fmt.Fprintf(&buf, "  %q -> %q;\n", a.Giver, a.Receiver)
	}

	if len(opts.Partnerships) > 0 {
		buf.WriteString("\n")
		for _, p := range opts.Partnerships {
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed, color=grey, constraint=false];\n", p.A, p.B)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
