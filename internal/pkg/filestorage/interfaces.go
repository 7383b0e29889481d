package filestorage

import (
	"errors"
	"mime/multipart"
)

// Upload rejections
var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath and returns its public path
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously returned path; missing files are not an error
	DeleteFile(filePath string) error
}
