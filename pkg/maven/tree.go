// Package maven locates the Maven executable, invokes it against a project,
// and parses the text output of the dependency:tree goal into coordinates.
//
// The parser understands the ASCII tree decoration Maven writes with
// -DoutputFile, for example:
//
//	com.acme:app:jar:1.0
//	+- org.json:json:jar:20230618:compile
//	|  \- com.other:lib:jar:2.1:runtime
//	\- org.slf4j:slf4j-api:jar:2.0.9:compile
//
// The first coordinate line is always the project itself and is never
// reported as a dependency.
package maven

import (
	"regexp"
	"strings"
)

// Coordinate grammar: groupId:artifactId:type[:classifier]:version[:scope].
// Dependency lines always carry a scope; the project's own root line does
// not, which is what the bare form matches. Packaging is restricted to the
// kinds Maven emits for resolvable artifacts.
var (
	scopedCoordinateRe = regexp.MustCompile(`([\w.-]+):([\w.-]+):(jar|war|ear|pom|aar)(?::([\w.-]+))?:([\w.-]+):([\w.-]+)`)
	bareCoordinateRe   = regexp.MustCompile(`([\w.-]+):([\w.-]+):(jar|war|ear|pom|aar):([\w.-]+)`)
)

// continuationMarker is the 3-character prefix Maven repeats once per
// ancestor level on tree lines ("pipe, space, space").
const continuationMarker = "|  "

// ParseTree decodes dependency-tree lines into the flat dependency list, in
// first-seen order.
//
// Per line: leading continuation markers are counted into a provisional
// depth, the branch marker ("+- " or "\- ", or a degenerate lone pipe) is
// stripped, and the remainder is matched against the coordinate grammar.
// Lines that do not carry a coordinate (blank lines, Maven log banners) are
// skipped silently. The first matching line overall is the project root and
// is always discarded. With directOnly set, only depth-zero entries remain.
// Duplicates by groupId:artifactId:version collapse to the first occurrence
// regardless of depth.
func ParseTree(lines []string, directOnly bool) []Dependency {
	var deps []Dependency
	seen := make(map[string]struct{})
	rootSeen := false

	for _, line := range lines {
		depth, rest := stripDecoration(line)

		dep, ok := matchCoordinate(rest)
		if !ok {
			continue
		}

		// The first coordinate is the project itself, never a dependency.
		if !rootSeen {
			rootSeen = true
			continue
		}

		if directOnly && depth > 0 {
			continue
		}

		if _, dup := seen[dep.Key()]; dup {
			continue
		}
		seen[dep.Key()] = struct{}{}
		deps = append(deps, dep)
	}

	return deps
}

// ParseTreeText splits raw tree-file content into lines (tolerating CRLF)
// and parses them with ParseTree.
func ParseTreeText(text string, directOnly bool) []Dependency {
	return ParseTree(splitLines(text), directOnly)
}

// matchCoordinate extracts a coordinate from a decoration-stripped line.
// The scoped form is tried first so that a five-field dependency line is
// never misread as a four-field root with trailing junk. Scope defaults to
// "compile" on the scopeless form, which in practice only matches the root
// line.
func matchCoordinate(rest string) (Dependency, bool) {
	if m := scopedCoordinateRe.FindStringSubmatch(rest); m != nil {
		return Dependency{
			GroupID:    m[1],
			ArtifactID: m[2],
			Type:       m[3],
			Version:    m[5],
			Scope:      m[6],
		}, true
	}

	if m := bareCoordinateRe.FindStringSubmatch(rest); m != nil {
		return Dependency{
			GroupID:    m[1],
			ArtifactID: m[2],
			Type:       m[3],
			Version:    m[4],
			Scope:      "compile",
		}, true
	}

	return Dependency{}, false
}

// stripDecoration removes the ASCII tree decoration from one line and
// returns the marker depth plus the remaining text. Lines shorter than a
// full marker never panic: whatever prefix matched is dropped, the rest
// passes through unchanged.
func stripDecoration(line string) (depth int, rest string) {
	rest = line
	for strings.HasPrefix(rest, continuationMarker) {
		depth++
		rest = rest[len(continuationMarker):]
	}

	switch {
	case strings.HasPrefix(rest, "+-"), strings.HasPrefix(rest, "\\-"), strings.HasPrefix(rest, "+ "):
		if len(rest) > 3 {
			rest = rest[3:]
		} else {
			rest = ""
		}
	case strings.HasPrefix(rest, "|"):
		rest = strings.TrimSpace(rest[1:])
	}

	return depth, rest
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
