package errors

import (
	"testing"
)

func TestValidateDirName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "junit", false},
		{"valid with dash", "slf4j-api", false},
		{"valid with underscore", "scala_2.13", false},
		{"valid with dot", "org.json", false},
		{"valid dotted run inside", "a..b", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"forward slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDirName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDirName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEntryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "Foo.java", false},
		{"nested file", "org/json/JSONObject.java", false},
		{"directory entry", "org/json/", false},
		{"dots in name", "module-info.class", false},
		{"dot dot in segment", "foo..bar/baz.java", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute unix", "/etc/passwd", true},
		{"absolute windows", "\\windows\\system32", true},
		{"drive letter", "C:\\temp\\x", true},
		{"traversal leading", "../outside.txt", true},
		{"traversal nested", "org/../../outside.txt", true},
		{"traversal backslash", "org\\..\\outside.txt", true},
		{"null byte", "foo\x00bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
