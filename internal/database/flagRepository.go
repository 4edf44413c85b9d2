package database

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ds124wfegd/country-gateway/internal/pkg/storage"
)

func NewFlagRepository(storage storage.FileStorage) FlagRepository {
	return &fileFlagRepository{storage: storage}
}

// SaveFlag stores the encoded flag and returns the path it was written to.
func (r *fileFlagRepository) SaveFlag(countryCode string, width int, file io.Reader) (string, error) {
	name := flagFileName(countryCode, width)
	if err := r.storage.Save(name, file); err != nil {
		return "", err
	}
	return r.storage.FullPath(name), nil
}

// flagFileName keeps the code as given but only its last path element, so a
// crafted code cannot escape the public directory.
func flagFileName(countryCode string, width int) string {
	code := filepath.Base(strings.TrimSpace(countryCode))
	return fmt.Sprintf("%s_flag_%d.png", code, width)
}
