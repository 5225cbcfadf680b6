package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"paris-coordcheck/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrDirectoryNotFound is returned when the data directory does not exist.
var ErrDirectoryNotFound = errors.New("repository: data directory not found")

// Repository loads district documents from a directory of JSON files
type Repository struct {
	fs  afero.Fs
	dir string
}

// NewRepository creates a new filesystem repository rooted at dir
func NewRepository(fs afero.Fs, dir string) *Repository {
	return &Repository{fs: fs, dir: dir}
}

// LoadDistricts reads every *.json file in the directory, sorted by name.
// Files that cannot be read or decoded are logged and skipped.
func (r *Repository) LoadDistricts() ([]models.SourceDocument, error) {
	info, err := r.fs.Stat(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, r.dir)
		}
		return nil, fmt.Errorf("repository: failed to stat %s: %w", r.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, r.dir)
	}

	paths, err := afero.Glob(r.fs, filepath.Join(r.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list %s: %w", r.dir, err)
	}
	sort.Strings(paths)

	var docs []models.SourceDocument
	for _, path := range paths {
		name := filepath.Base(path)

		district, err := r.readDistrict(path)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("skipping district file")
			continue
		}

		log.Info().Str("file", name).Str("district", district.IDText(name)).Int("categories", len(district.Categories)).Msg("loaded district file")
		docs = append(docs, models.SourceDocument{File: name, District: district})
	}

	return docs, nil
}

func (r *Repository) readDistrict(path string) (models.District, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return models.District{}, fmt.Errorf("repository: failed to read file: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.District{}, fmt.Errorf("repository: failed to decode file: %w", err)
	}

	var district models.District
	if doc.Arrondissement != nil {
		district = *doc.Arrondissement
	}
	return district, nil
}
