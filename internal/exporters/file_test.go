package exporters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExporter_WritesDocument(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter(dir, ConflictCancel)

	result, err := exporter.Export(sampleRecord())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "The Left Hand of Darkness.md"), result.OutputPath)
	assert.Equal(t, 3, result.TimelineEvents)
	assert.Equal(t, 1, result.CirculationEvents)

	content, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, RenderMarkdown(sampleRecord()), string(content))
}

func TestFileExporter_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	exporter := NewFileExporter(dir, ConflictCancel)

	result, err := exporter.Export(sampleRecord())

	require.NoError(t, err)
	assert.FileExists(t, result.OutputPath)
}

func TestFileExporter_ReplaceOverwrites(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "The Left Hand of Darkness.md")
	require.NoError(t, os.WriteFile(existing, []byte("stale content"), 0644))

	exporter := NewFileExporter(dir, ConflictReplace)
	result, err := exporter.Export(sampleRecord())

	require.NoError(t, err)
	assert.Equal(t, existing, result.OutputPath)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale content")
	assert.Contains(t, string(content), "# The Left Hand of Darkness")
}

func TestFileExporter_KeepBothProbesFreeName(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter(dir, ConflictKeepBoth)

	first, err := exporter.Export(sampleRecord())
	require.NoError(t, err)
	second, err := exporter.Export(sampleRecord())
	require.NoError(t, err)
	third, err := exporter.Export(sampleRecord())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "The Left Hand of Darkness.md"), first.OutputPath)
	assert.Equal(t, filepath.Join(dir, "The Left Hand of Darkness (1).md"), second.OutputPath)
	assert.Equal(t, filepath.Join(dir, "The Left Hand of Darkness (2).md"), third.OutputPath)
}

func TestFileExporter_CancelLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "The Left Hand of Darkness.md")
	require.NoError(t, os.WriteFile(existing, []byte("do not touch"), 0644))

	exporter := NewFileExporter(dir, ConflictCancel)
	_, err := exporter.Export(sampleRecord())

	require.ErrorIs(t, err, ErrExportCancelled)

	content, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "do not touch", string(content))
}

func TestFileExporter_SanitizesTitle(t *testing.T) {
	dir := t.TempDir()
	record := sampleRecord()
	record.Title = "Love/Hate: A Story?"

	exporter := NewFileExporter(dir, ConflictCancel)
	result, err := exporter.Export(record)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "LoveHate A Story.md"), result.OutputPath)
}

func TestParseConflictPolicy(t *testing.T) {
	for _, valid := range []string{"replace", "keep-both", "cancel"} {
		policy, err := ParseConflictPolicy(valid)
		require.NoError(t, err)
		assert.Equal(t, ConflictPolicy(valid), policy)
	}

	_, err := ParseConflictPolicy("ask-me-later")
	require.Error(t, err)
}
