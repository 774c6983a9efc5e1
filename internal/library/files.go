package library

import (
	"path/filepath"
	"strings"
)

// audioExtensions is the utility-level allow-list. It deliberately keeps
// aac even though the scanner does not collect it; see DESIGN.md.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".aac":  true,
}

// IsAudioFile reports whether the path looks like an audio file.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// TitleFromPath derives a display title from a file path: the base name
// without its extension, or "Unknown" for degenerate paths.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" || title == "." || title == string(filepath.Separator) {
		return "Unknown"
	}
	return title
}
