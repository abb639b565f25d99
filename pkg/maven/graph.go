package maven

import "strings"

// TreeNode is one dependency-tree entry with its tree position preserved.
// Unlike ParseTree, graph parsing keeps the project root and duplicate
// occurrences so a rendered tree mirrors what Maven printed.
type TreeNode struct {
	Dependency
	Level  int // 0 for the project root, 1 for direct dependencies
	Parent int // index of the parent node in the returned slice, -1 for roots
}

// ParseTreeGraph decodes tree lines into nodes with parent links.
//
// Indentation handling is stricter than ParseTree needs to be: below the
// last child of a branch Maven pads with three spaces instead of "pipe,
// space, space", and both count toward the level here so edges attach to
// the right parent.
func ParseTreeGraph(lines []string) []TreeNode {
	var nodes []TreeNode
	lastAtLevel := make(map[int]int)

	for _, line := range lines {
		level, branched, rest := stripDecorationLevels(line)
		dep, ok := matchCoordinate(rest)
		if !ok {
			continue
		}

		if !branched {
			level = 0
		}

		parent := -1
		if level > 0 {
			if idx, ok := lastAtLevel[level-1]; ok {
				parent = idx
			}
		}

		nodes = append(nodes, TreeNode{Dependency: dep, Level: level, Parent: parent})
		lastAtLevel[level] = len(nodes) - 1
	}

	return nodes
}

// ParseTreeGraphText splits raw tree-file content into lines (tolerating
// CRLF) and parses them with ParseTreeGraph.
func ParseTreeGraphText(text string) []TreeNode {
	return ParseTreeGraph(splitLines(text))
}

// stripDecorationLevels is the graph-parse variant of stripDecoration: it
// counts both continuation forms ("|  " and "   ") and reports whether the
// line carried a branch marker at all, which distinguishes dependencies
// from the undecorated root line.
func stripDecorationLevels(line string) (level int, branched bool, rest string) {
	rest = line
indent:
	for {
		switch {
		case strings.HasPrefix(rest, continuationMarker):
			level++
			rest = rest[len(continuationMarker):]
		case strings.HasPrefix(rest, "   "):
			level++
			rest = rest[3:]
		default:
			break indent
		}
	}

	switch {
	case strings.HasPrefix(rest, "+-"), strings.HasPrefix(rest, "\\-"), strings.HasPrefix(rest, "+ "):
		branched = true
		level++
		if len(rest) > 3 {
			rest = rest[3:]
		} else {
			rest = ""
		}
	case strings.HasPrefix(rest, "|"):
		branched = true
		level++
		rest = strings.TrimSpace(rest[1:])
	}

	return level, branched, rest
}
