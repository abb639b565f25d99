package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mvnsrc/pkg/errors"
)

// Config holds the optional settings read from the user's config file
// (~/.config/mvnsrc/config.toml). Every field can also be set per
// invocation; the effective precedence is flags > environment > file >
// built-in default.
type Config struct {
	// Output names the extraction target directory. Relative paths are
	// resolved against the project directory.
	Output string `toml:"output"`

	// Repository overrides the local Maven repository root.
	Repository string `toml:"repository"`

	// Maven pins the mvn executable instead of consulting MAVEN_HOME and
	// PATH.
	Maven string `toml:"maven"`

	// Decompiler points at a Fernflower jar used for dependencies that
	// have no published sources.
	Decompiler string `toml:"decompiler"`
}

// Environment variables overriding config file values.
const (
	envOutput     = "MVNSRC_OUTPUT"
	envRepository = "MVNSRC_REPOSITORY"
	envDecompiler = "MVNSRC_DECOMPILER"
)

// loadConfig reads the config file. With an empty path the XDG location is
// tried and a missing file yields the zero config; an explicitly named file
// must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
			}
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to read "+path)
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/mvnsrc/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// firstNonEmpty applies the flag > environment > file precedence chain.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
