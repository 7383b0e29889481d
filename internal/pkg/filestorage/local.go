package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/pkg/logger"
)

// DefaultAllowedExtensions are the image types accepted for profile pictures.
var DefaultAllowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// LocalStorage saves uploads on the local filesystem.
type LocalStorage struct {
	basePath   string
	baseURL    string
	maxSize    int64
	allowedExt []string
}

// Option customises a LocalStorage
type Option func(*LocalStorage)

// WithMaxSize limits the accepted upload size in bytes
func WithMaxSize(n int64) Option {
	return func(ls *LocalStorage) { ls.maxSize = n }
}

// WithAllowedExtensions overrides the accepted file extensions
func WithAllowedExtensions(ext ...string) Option {
	return func(ls *LocalStorage) { ls.allowedExt = ext }
}

// NewLocalStorage creates basePath if needed. Returned paths are prefixed with
// baseURL, or with "/uploads" when baseURL is empty.
func NewLocalStorage(basePath, baseURL string, opts ...Option) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	ls := &LocalStorage{
		basePath:   basePath,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxSize:    5 << 20,
		allowedExt: DefaultAllowedExtensions,
	}
	for _, opt := range opts {
		opt(ls)
	}
	if ls.baseURL == "" {
		ls.baseURL = "/uploads"
	}

	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")
	return ls, nil
}

// SaveFileWithPath copies the upload into basePath/subPath under a random name.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slices.Contains(ls.allowedExt, ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	if ls.maxSize > 0 && fileHeader.Size > ls.maxSize {
		return "", ErrFileTooLarge
	}

	subPath = filepath.Clean("/" + subPath)[1:]
	dir := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	public := path.Join(ls.baseURL, filepath.ToSlash(subPath), name)
	if strings.HasPrefix(ls.baseURL, "http") {
		public = ls.baseURL + "/" + path.Join(filepath.ToSlash(subPath), name)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", public).Msg("File saved")
	return public, nil
}

// DeleteFile removes a file previously returned by SaveFileWithPath.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	rel := strings.TrimPrefix(filePath, ls.baseURL)
	rel = filepath.Clean("/" + filepath.FromSlash(rel))[1:]
	if rel == "" || rel == "." {
		return ErrInvalidFilePath
	}

	full := filepath.Join(ls.basePath, rel)
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", full).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
