package extract

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Shimizu-Technology/medsum/internal/models"
)

// ResolveMediaType decides which extraction path an upload takes.
//
// The declared Content-Type wins when it is one we support. Browsers often
// send application/octet-stream (or nothing) for unknown files, so in that
// case the bytes are sniffed, and the file extension is the last resort.
// An empty return means the upload is not a supported report format.
func ResolveMediaType(declared, filename string, data []byte) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil {
		switch mt {
		case models.MediaTypePDF, models.MediaTypeText:
			return mt
		}
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is(models.MediaTypePDF):
		return models.MediaTypePDF
	case detected.Is(models.MediaTypeText):
		return models.MediaTypeText
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return models.MediaTypePDF
	case ".txt":
		return models.MediaTypeText
	}
	return ""
}
