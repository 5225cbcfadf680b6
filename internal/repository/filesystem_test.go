package repository

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFs(t *testing.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data", 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "/data/"+name, []byte(content), 0o644))
	}
	return fs
}

func TestRepository_LoadDistricts(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"02.json": `{"arrondissement": {"id": "2ème", "categories": {}}}`,
		"01.json": `{
			"arrondissement": {
				"id": "1er",
				"center": [48.8606, 2.3376],
				"categories": {
					"restaurants": {"title": "Restaurants", "places": [{"id": "a", "name": "A", "coordinates": [48.86, 2.33]}]},
					"musees": {"places": []}
				}
			}
		}`,
		"notes.txt": "not json",
	})

	repo := NewRepository(fs, "/data")

	docs, err := repo.LoadDistricts()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "01.json", docs[0].File)
	assert.Equal(t, "1er", docs[0].District.IDText(docs[0].File))
	assert.JSONEq(t, `[48.8606, 2.3376]`, string(docs[0].District.Center))
	require.Len(t, docs[0].District.Categories, 2)
	assert.Equal(t, "restaurants", docs[0].District.Categories[0].Label)
	assert.Equal(t, "Restaurants", docs[0].District.Categories[0].Title)
	assert.Equal(t, "musees", docs[0].District.Categories[1].Label)
	assert.Len(t, docs[0].District.Categories[0].Places, 1)

	assert.Equal(t, "02.json", docs[1].File)
	assert.Equal(t, "2ème", docs[1].District.IDText(docs[1].File))
}

func TestRepository_LoadDistricts_SkipsMalformedFiles(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"01.json": `{"arrondissement": {"id": "1er"}}`,
		"02.json": `{"arrondissement": {`,
		"03.json": `["not", "a", "document"]`,
		"04.json": `{"arrondissement": {"categories": {"parcs": "oops"}}}`,
	})

	repo := NewRepository(fs, "/data")

	docs, err := repo.LoadDistricts()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "01.json", docs[0].File)
}

func TestRepository_LoadDistricts_Defaults(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"15.json":    `{"arrondissement": {"categories": {"parcs": {}}}}`,
		"empty.json": `{}`,
	})

	repo := NewRepository(fs, "/data")

	docs, err := repo.LoadDistricts()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "15.json", docs[0].District.IDText(docs[0].File))
	require.Len(t, docs[0].District.Categories, 1)
	assert.Empty(t, docs[0].District.Categories[0].Places)

	assert.Equal(t, "empty.json", docs[1].District.IDText(docs[1].File))
	assert.Empty(t, docs[1].District.Categories)
	assert.Empty(t, docs[1].District.Center)
}

func TestRepository_LoadDistricts_NonStringFields(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"01.json": `{"arrondissement": {"id": 1, "categories": {"parcs": {"places": [
			{"id": 3, "name": 123, "address": false, "coordinates": [48.86, 2.33]}
		]}}}}`,
		"02.json": `{"arrondissement": {"id": "2e", "categories": {}}}`,
	})

	repo := NewRepository(fs, "/data")

	docs, err := repo.LoadDistricts()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "01.json", docs[0].File)
	assert.Equal(t, "1", docs[0].District.IDText(docs[0].File))
	require.Len(t, docs[0].District.Categories, 1)
	assert.Len(t, docs[0].District.Categories[0].Places, 1)
	assert.Equal(t, "2e", docs[1].District.IDText(docs[1].File))
}

func TestRepository_LoadDistricts_EmptyDirectory(t *testing.T) {
	repo := NewRepository(setupFs(t, nil), "/data")

	docs, err := repo.LoadDistricts()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRepository_LoadDistricts_MissingDirectory(t *testing.T) {
	repo := NewRepository(afero.NewMemMapFs(), "/nowhere")

	_, err := repo.LoadDistricts()
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestRepository_LoadDistricts_PathIsFile(t *testing.T) {
	fs := setupFs(t, map[string]string{"01.json": `{}`})

	repo := NewRepository(fs, "/data/01.json")

	_, err := repo.LoadDistricts()
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}
