package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"paris-coordcheck/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const premier = `{
	"arrondissement": {
		"id": "1er",
		"center": [48.8606, 2.3376],
		"categories": {
			"restaurants": {
				"places": [
					{"id": "a", "name": "Place A", "address": "1 Rue de Rivoli", "coordinates": [48.8606, 2.3376]},
					{"id": "b", "name": "Place B", "address": "2 Rue du Louvre", "coordinates": [48.870, 2.330]},
					{"id": "c", "name": "Place C", "address": "3 Rue Saint-Honoré", "coordinates": [48.8606, 2.3376]},
					{"id": "d", "name": "Place D", "address": "4 Rue de Lyon"},
					{"id": "e", "name": "Place E", "address": "Lyon", "coordinates": [45.0, 2.3]}
				]
			}
		}
	}
}`

func setupDataDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--config", t.TempDir(), "--log-level", "error"))

	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := setupDataDir(t, map[string]string{
		"01.json":     premier,
		"broken.json": `{"arrondissement": `,
	})

	out, err := execute(t, "analyze", "--dir", dir, "--target", "Place A")
	require.NoError(t, err)

	assert.Contains(t, out, "Files loaded: 1")
	assert.Contains(t, out, "Places analyzed: 5")
	assert.Contains(t, out, "DUPLICATE COORDINATES: 1 groups")
	assert.Contains(t, out, "[48.860600, 2.337600] - 2 places:")
	assert.Contains(t, out, "PLACES USING THEIR DISTRICT CENTER:")
	assert.Contains(t, out, "MISSING COORDINATES: 1")
	assert.Contains(t, out, "OUTSIDE BOUNDS: 1")
	assert.Contains(t, out, "Place E - [45, 2.3]")
	assert.Contains(t, out, "SUSPICIOUS COORDINATES: 0")
	assert.Contains(t, out, "TARGETED LOOKUP: 1 matches")
	assert.Contains(t, out, "Same as district center: YES")
}

func TestSummaryCommand(t *testing.T) {
	dir := setupDataDir(t, map[string]string{"01.json": premier})

	out, err := execute(t, "summary", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Total places: 5")
	assert.Contains(t, out, "With coordinates: 4 (80.0%)")
	assert.Contains(t, out, "Without coordinates: 1 (20.0%)")
	assert.Contains(t, out, "Duplicate coordinate sets: 1")
	assert.Contains(t, out, "1er: 1 places")
}

func TestAnalyzeCommand_EmptyDirectory(t *testing.T) {
	out, err := execute(t, "analyze", "--dir", setupDataDir(t, nil))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAnalyzeCommand_MissingDirectory(t *testing.T) {
	out, err := execute(t, "analyze", "--dir", filepath.Join(t.TempDir(), "nowhere"))
	assert.ErrorIs(t, err, repository.ErrDirectoryNotFound)
	assert.Empty(t, out)
}

func TestAnalyzeCommand_InvalidPrecision(t *testing.T) {
	_, err := execute(t, "analyze", "--dir", setupDataDir(t, nil), "--precision=-3")
	assert.ErrorContains(t, err, "precision")
}
