package util

import (
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText : убирает любую разметку из пользовательского текста
func SanitizeText(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// SanitizeFileName : имя файла без пути и разметки
func SanitizeFileName(name string) string {
	name = SanitizeText(name)
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "arquivo"
	}
	return name
}

// OnlyDigits : CPF/CNPJ/CEP хранятся без маски
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
