package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
)

// PrintVersion prints the version information
func PrintVersion(w io.Writer, version, commit, date string) {
	version, commit, date = versionDefaults(version, commit, date)
	_, _ = fmt.Fprintf(w, "version: %s\n", version)
	_, _ = fmt.Fprintf(w, "commit: %s\n", commit)
	_, _ = fmt.Fprintf(w, "built at: %s\n", date)
	_, _ = fmt.Fprintf(w, "go: %s\n", runtime.Version())
}

// VersionInfo represents version information as a structured object.
type VersionInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	BuiltAt        string `json:"builtAt"`
	GoBuildVersion string `json:"goBuildVersion"`
}

// PrintVersionJSON prints version information as JSON.
func PrintVersionJSON(w io.Writer, version, commit, date string) {
	version, commit, date = versionDefaults(version, commit, date)

	info := VersionInfo{
		Version:        version,
		Commit:         commit,
		BuiltAt:        date,
		GoBuildVersion: runtime.Version(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(info)
}

func versionDefaults(version, commit, date string) (string, string, string) {
	if version == "" {
		version = "unknown"
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return version, commit, date
}
