package promote

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"term_harvester/internal/domain"
)

func testPromoter() *Promoter {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeReport(t *testing.T, dir string, rep *domain.Report) string {
	t.Helper()
	data, err := yaml.Marshal(rep)
	require.NoError(t, err)
	path := filepath.Join(dir, "report.yml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &entries))
	return entries
}

func sampleReport() *domain.Report {
	return &domain.Report{
		NewHigh: []domain.CandidateTerm{
			{EN: "data mesh", ETHints: []string{"andmevõrgustik", "andmesilm"}, Tier: domain.TierHigh, Frequency: 4},
			{EN: "api gateway", Tier: domain.TierHigh, Frequency: 2},
		},
		NewMedium: []domain.CandidateTerm{
			{EN: "graph embedding", ETHints: []string{"graafi vektoresitus"}, Tier: domain.TierMedium, Frequency: 3},
		},
	}
}

func TestPromoteAllNewHighByDefault(t *testing.T) {
	dir := t.TempDir()
	reportPath := writeReport(t, dir, sampleReport())
	termsPath := filepath.Join(dir, "terms.yml")

	res, err := testPromoter().Promote(reportPath, termsPath, nil)
	require.NoError(t, err)

	// "api gateway" has no Estonian hint and must be skipped.
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)

	entries := readEntries(t, termsPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "data mesh", entries[0]["en"])
	assert.Equal(t, "andmevõrgustik", entries[0]["et"])

	alt, ok := entries[0]["alt"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"andmesilm"}, alt["et"])
}

func TestPromoteSelectionCanReachMediumTier(t *testing.T) {
	dir := t.TempDir()
	reportPath := writeReport(t, dir, sampleReport())
	termsPath := filepath.Join(dir, "terms.yml")

	res, err := testPromoter().Promote(reportPath, termsPath, []string{"graph embedding"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)

	entries := readEntries(t, termsPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "graph embedding", entries[0]["en"])
}

func TestPromoteSkipsExistingAndPreservesUnknownFields(t *testing.T) {
	dir := t.TempDir()
	reportPath := writeReport(t, dir, sampleReport())
	termsPath := filepath.Join(dir, "terms.yml")

	seed := `
- en: data mesh
  et: andmevõrgustik
  definition: olemasolev definitsioon
  references:
    - https://example.ee/ref
`
	require.NoError(t, os.WriteFile(termsPath, []byte(seed), 0o644))

	res, err := testPromoter().Promote(reportPath, termsPath, []string{"data mesh", "graph embedding"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)

	entries := readEntries(t, termsPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "data mesh", entries[0]["en"])
	assert.Equal(t, "olemasolev definitsioon", entries[0]["definition"])
	assert.Equal(t, "graph embedding", entries[1]["en"])
}

func TestPromoteRejectsUnknownSelection(t *testing.T) {
	dir := t.TempDir()
	reportPath := writeReport(t, dir, sampleReport())

	_, err := testPromoter().Promote(reportPath, filepath.Join(dir, "terms.yml"), []string{"no such term"})
	assert.Error(t, err)
}
