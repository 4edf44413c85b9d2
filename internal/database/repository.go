package database

import (
	"io"

	"github.com/ds124wfegd/country-gateway/internal/pkg/storage"
)

type FlagRepository interface {
	SaveFlag(countryCode string, width int, file io.Reader) (string, error)
}

type fileFlagRepository struct {
	storage storage.FileStorage
}
