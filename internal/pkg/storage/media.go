package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// SniffImage reads the head of r to detect its type. It returns the content
// type, the file extension and a reader that replays the sniffed bytes.
func SniffImage(r io.Reader) (string, string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", nil, fmt.Errorf("%w: unsupported media type %s", models.ErrInvalidInput, contentType)
	}
	return contentType, ext, io.MultiReader(bytes.NewReader(head), r), nil
}

// MediaKey is the object key of a new upload for dentistID
func MediaKey(dentistID uuid.UUID, ext string) string {
	return fmt.Sprintf("dentists/%s/%s%s", dentistID, uuid.NewString(), ext)
}
