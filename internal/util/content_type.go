package util

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ContentTypeByExtension : MIME по расширению имени файла
func ContentTypeByExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	case ".zip":
		return "application/zip"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// ResolveContentType : заявленный тип без параметров; если клиент его не прислал,
// тип определяется по содержимому, затем по расширению
func ResolveContentType(declared string, data []byte, filename string) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return strings.ToLower(mediaType)
		}
	}

	if len(data) > 0 {
		detected := mimetype.Detect(data).String()
		if mediaType, _, err := mime.ParseMediaType(detected); err == nil && mediaType != "application/octet-stream" && mediaType != "text/plain" {
			return mediaType
		}
	}

	return ContentTypeByExtension(filename)
}
