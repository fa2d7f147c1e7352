package main

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubBuildInfo(t *testing.T, v, c, d string, bi *debug.BuildInfo) {
	t.Helper()
	originalVersion, originalCommit, originalDate := version, commit, date
	originalRead := readBuildInfo
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
		readBuildInfo = originalRead
	})

	version, commit, date = v, c, d
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	stubBuildInfo(t, "1.2.3", "abcdef1", "2026-10-03", &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Version: "v9.9.9"},
		Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffff"}},
	})

	output, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "stepperlab 1.2.3")
	require.Contains(t, output, "commit: abcdef1\n")
	require.Contains(t, output, "2026-10-03")
	require.Contains(t, output, "go: go1.25.1")
}

func TestVersionFallsBackToEmbeddedBuildInfo(t *testing.T) {
	stubBuildInfo(t, "dev", "none", "unknown", &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123abc"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	output, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "stepperlab v0.4.0")
	require.Contains(t, output, "commit: 0123abc (modified)")
	require.Contains(t, output, "built: 2026-10-01T12:00:00Z")
}

func TestVersionWithoutBuildInfo(t *testing.T) {
	stubBuildInfo(t, "dev", "none", "unknown", nil)

	output, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "stepperlab dev\ncommit: none\nbuilt: unknown\n", output)
}
