// Package treeviz renders a parsed dependency tree as plain text, DOT,
// SVG or JSON for consumption outside the terminal.
package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/maven"
)

// ToDOT serializes the tree as a Graphviz document: one node per tree
// entry, one edge per parent link. Node identifiers are positional so
// coordinates appearing twice in the tree stay distinct nodes.
func ToDOT(nodes []maven.TreeNode) string {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=11];\n")
	b.WriteString("  edge [color=\"#87878f\"];\n")

	for i, n := range nodes {
		label := n.Key()
		if n.Scope != "" && n.Scope != "compile" {
			label += " (" + n.Scope + ")"
		}
		fmt.Fprintf(&b, "  n%d [label=%q];\n", i, label)
	}
	for i, n := range nodes {
		if n.Parent >= 0 {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", n.Parent, i)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderSVG lays the DOT source out with Graphviz and returns the SVG
// bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to initialize graphviz")
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse dot source")
	}
	defer func() { _ = graph.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to render svg")
	}
	return buf.Bytes(), nil
}
