package maven

// Dependency is one artifact coordinate taken from a Maven dependency tree.
// Values are immutable once constructed by the parser.
type Dependency struct {
	GroupID    string // e.g. "org.apache.commons"
	ArtifactID string // e.g. "commons-lang3"
	Version    string // e.g. "3.14.0"
	Type       string // packaging: jar, war, ear, pom or aar
	Scope      string // compile, provided, runtime, test or system
}

// Key returns the identity of the dependency, groupId:artifactId:version.
// Scope and packaging are deliberately excluded: two tree entries differing
// only there collapse to a single dependency.
func (d Dependency) Key() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// String returns the short human-readable coordinate form.
func (d Dependency) String() string {
	return d.Key()
}
