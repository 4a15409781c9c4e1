package httpd

import "strings"

var mimeTypes = map[string]string{
	"7z":    "application/x-7z-compressed",
	"bmp":   "image/x-ms-bmp",
	"css":   "text/css",
	"csv":   "text/csv",
	"gif":   "image/gif",
	"htm":   "text/html",
	"html":  "text/html",
	"ico":   "image/x-icon",
	"jpeg":  "image/jpeg",
	"jpg":   "image/jpeg",
	"js":    "application/javascript",
	"json":  "application/json",
	"mp3":   "audio/mpeg",
	"mp4":   "video/mp4",
	"ogg":   "audio/mpeg",
	"pdf":   "application/pdf",
	"png":   "image/png",
	"svg":   "image/svg+xml",
	"txt":   "text/plain",
	"wasm":  "application/wasm",
	"wav":   "audio/mpeg",
	"webp":  "image/webp",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"xml":   "text/xml",
	"zip":   "application/zip",
}

// MimeType maps a file extension, with or without the leading dot, to a
// MIME type. Unknown extensions map to application/octet-stream.
func MimeType(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	return "application/octet-stream"
}
