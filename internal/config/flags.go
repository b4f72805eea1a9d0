package config

import (
	"flag"
	"strings"
)

// FileList collects the values of a repeatable source flag in the order
// they appear on the command line.
// It implements the flag.Value interface.
type FileList struct {
	Refs []string
}

// ParseFlags parses all configuration flags. Settings without a flag
// (root-access policy, remote fetch timeout) are environment-only.
//
// Flags:
//
//	-config-base-dir base directory holding the config/ defaults
//	-config-ignore-defaults skip loading the default config files
//	-config-load config file path or URL, repeatable
func ParseFlags() *FileConfig {
	var baseDir string
	var ignoreDefaults bool
	var files FileList

	flag.StringVar(&baseDir, "config-base-dir", "", "Base directory holding the config/ defaults")
	flag.BoolVar(&ignoreDefaults, "config-ignore-defaults", false, "Skip loading the default config files")
	flag.Var(&files, "config-load", "Config file path or URL (repeatable)")

	flag.Parse()

	return &FileConfig{
		BaseDir:        baseDir,
		IgnoreDefaults: ignoreDefaults,
		Files:          files.Refs,
	}
}

// String returns the collected references joined by commas, mirroring the
// CONFKEEPER_LOAD environment format.
func (l *FileList) String() string {
	return strings.Join(l.Refs, ",")
}

// Set appends one reference to the list. Blank values are rejected with
// [ErrEmptyFileRef].
func (l *FileList) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyFileRef
	}

	l.Refs = append(l.Refs, s)
	return nil
}
