package treeviz

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/mvnsrc/pkg/maven"
)

// Document is the JSON shape of an exported dependency tree.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one tree entry. The ID is the entry's position in the parsed
// tree and is what edges refer to.
type Node struct {
	ID         int    `json:"id"`
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
	Scope      string `json:"scope,omitempty"`
	Level      int    `json:"level"`
}

// Edge points from a dependent to its dependency.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WriteJSON writes the tree as an indented JSON document.
func WriteJSON(nodes []maven.TreeNode, w io.Writer) error {
	doc := Document{Nodes: make([]Node, 0, len(nodes)), Edges: make([]Edge, 0)}
	for i, n := range nodes {
		doc.Nodes = append(doc.Nodes, Node{
			ID:         i,
			GroupID:    n.GroupID,
			ArtifactID: n.ArtifactID,
			Version:    n.Version,
			Scope:      n.Scope,
			Level:      n.Level,
		})
		if n.Parent >= 0 {
			doc.Edges = append(doc.Edges, Edge{From: n.Parent, To: i})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ToText renders the tree as an indented coordinate list, two spaces per
// level.
func ToText(nodes []maven.TreeNode) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(strings.Repeat("  ", n.Level))
		b.WriteString(n.Key())
		if n.Scope != "" {
			b.WriteString(" [" + n.Scope + "]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
