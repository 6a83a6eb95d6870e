package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// UploadsURLPrefix is the public path stored files are served under.
const UploadsURLPrefix = "/uploads/"

// safeExt matches the extensions kept on stored names.
var safeExt = regexp.MustCompile(`^\.[A-Za-z0-9]{1,16}$`)

type uploadService struct {
	fileStorage store.FileStorage
	ids         utils.IDGenerator

	logger *logger.Logger
}

func NewUploadService(fileStorage store.FileStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		fileStorage: fileStorage,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Store saves r under a new name made of a UUID and the extension of
// originalName. The content is not inspected.
func (s *uploadService) Store(ctx context.Context, originalName string, r io.Reader) (models.UploadedFile, error) {
	name := s.ids.Generate() + uploadExt(originalName)

	if err := s.fileStorage.Save(ctx, name, r); err != nil {
		return models.UploadedFile{}, fmt.Errorf("saving upload failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("filename", name).Str("original", originalName).Msg("file uploaded")
	return models.UploadedFile{
		Filename: name,
		URL:      UploadsURLPrefix + name,
	}, nil
}

func (s *uploadService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Open(ctx, name)
	if errors.Is(err, store.ErrFileNotFound) || errors.Is(err, store.ErrInvalidFileName) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening upload failed: %w", err)
	}

	return rc, nil
}

// uploadExt returns the extension of the last path element of name, with
// either slash style treated as a separator. Extensions that are not short
// alphanumerics are dropped.
func uploadExt(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	ext := filepath.Ext(name)
	if !safeExt.MatchString(ext) {
		return ""
	}
	return ext
}
