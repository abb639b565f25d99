package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()

	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()

	if !strings.Contains(tmpl, "{{.Name}}") {
		t.Errorf("Template() = %q, missing the cobra name placeholder", tmpl)
	}
	if !strings.Contains(tmpl, Version) {
		t.Errorf("Template() = %q, missing the version", tmpl)
	}
	if !strings.HasSuffix(tmpl, "\n") {
		t.Errorf("Template() should end with a newline for cobra output")
	}
}
