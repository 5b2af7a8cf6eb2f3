package handlertools

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/getidex/idex/pkg/models"
)

// documentMIMETypes maps supported identity document extensions to the
// MIME type sent to the extraction provider.
var documentMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// audioMIMETypes maps supported audio extensions to the MIME type used
// for the transcription upload.
var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".wma":  "audio/x-ms-wma",
}

// DocumentMIME resolves the MIME type of an uploaded document from its
// filename extension, sniffing the content as a fallback for unknown
// extensions.
func DocumentMIME(filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if mime, ok := documentMIMETypes[ext]; ok {
		return mime, nil
	}

	sniffed := mimetype.Detect(content)
	for _, mime := range documentMIMETypes {
		if sniffed.Is(mime) {
			return mime, nil
		}
	}

	return "", models.NewUnsupportedMediaError(ext, supportedExtensions(documentMIMETypes))
}

// AudioMIME resolves the MIME type of an uploaded audio file from its
// filename extension.
func AudioMIME(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if mime, ok := audioMIMETypes[ext]; ok {
		return mime, nil
	}
	return "", models.NewUnsupportedMediaError(ext, supportedExtensions(audioMIMETypes))
}

// supportedExtensions lists a MIME map's extensions in stable order for
// error messages.
func supportedExtensions(mimeTypes map[string]string) []string {
	exts := make([]string, 0, len(mimeTypes))
	for ext := range mimeTypes {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(exts)
	return exts
}
