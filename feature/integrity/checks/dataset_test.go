package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"property-engine/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, index string, shards map[string]string) dataset.Source {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "properties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "countries.json"), []byte(index), 0o644))
	for code, body := range shards {
		require.NoError(t, os.WriteFile(filepath.Join(root, "properties", code+".json"), []byte(body), 0o644))
	}
	cfg := testConfig
	cfg.Driver = dataset.DriverFile
	cfg.Root = filepath.ToSlash(root)
	return dataset.NewFileSource(cfg)
}

func TestCheckDataset(t *testing.T) {
	src := writeDataset(t, `[{"code": "TR"}, {"code": "CY"}, {"code": "DE"}]`, map[string]string{
		"TR": `[
			{"id": "1", "slug": "villa-x"},
			{"id": "2", "slug": "Deniz Manzaralı Villa", "title": "Deniz Manzaralı Villa"},
			{"id": "3"},
			{"slug": "no-id"}
		]`,
		"CY": `[{"id": "9", "slug": "villa-x"}, {"id": "10", "slug": "girne"}]`,
	})

	report, err := CheckDataset(context.Background(), src)
	require.NoError(t, err)

	assert.False(t, report.Matched)
	assert.Equal(t, 6, report.Records)
	require.Len(t, report.Countries, 3)

	tr := report.Countries[0]
	assert.Equal(t, "TR", tr.Code)
	assert.Equal(t, 4, tr.Records)
	assert.Equal(t, "warning", tr.Status)
	assert.Equal(t, []string{"TR/3"}, tr.MissingSlug)
	assert.Equal(t, []string{"no-id"}, tr.MissingID)
	require.Len(t, tr.InvalidSlugs, 1)
	assert.Equal(t, "Deniz Manzaralı Villa", tr.InvalidSlugs[0].Slug)
	assert.Equal(t, "deniz-manzarali-villa", tr.InvalidSlugs[0].Suggestion)

	cy := report.Countries[1]
	assert.Equal(t, "ok", cy.Status)
	assert.Equal(t, 2, cy.Records)

	de := report.Countries[2]
	assert.Equal(t, "error", de.Status)
	assert.NotEmpty(t, de.Error)

	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, DuplicateSlug{Slug: "villa-x", Winner: "TR/1", Shadowed: []string{"CY/9"}}, report.Duplicates[0])
}

func TestCheckDataset_Clean(t *testing.T) {
	src := writeDataset(t, `{"countries": [{"code": "tr"}]}`, map[string]string{
		"TR": `{"properties": [{"id": 1, "slug": "a"}, {"id": 2, "slug": "b"}]}`,
	})

	report, err := CheckDataset(context.Background(), src)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, 2, report.Records)
	assert.Empty(t, report.Duplicates)
}

func TestCheckDataset_MissingIndex(t *testing.T) {
	cfg := testConfig
	cfg.Root = filepath.ToSlash(t.TempDir())
	_, err := CheckDataset(context.Background(), dataset.NewFileSource(cfg))
	assert.ErrorIs(t, err, dataset.ErrNotExist)
}
