package constants

import (
	"path/filepath"
	"strings"
)

// DetectChatTypeFromExt deduz o tipo da mensagem de chat a partir do anexo.
func DetectChatTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return "image"
	case "":
		return "text"
	default:
		return "file"
	}
}
