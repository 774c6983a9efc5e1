package library

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ksarabia/melodeon/api"
	playerrors "github.com/ksarabia/melodeon/pkg/errors"
)

// Scanner collects audio files from a directory tree. It builds songs
// from filenames only and never opens the files, so scanning a large
// collection stays cheap; tag enrichment happens separately on demand.
type Scanner struct {
	formats []string
}

// NewScanner creates a scanner with the standard allow-list.
func NewScanner() *Scanner {
	return &Scanner{
		formats: []string{".mp3", ".wav", ".flac", ".ogg", ".m4a"},
	}
}

// SupportedFormats returns the scanner's extension allow-list.
func (s *Scanner) SupportedFormats() []string {
	return s.formats
}

func (s *Scanner) isSupported(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, format := range s.formats {
		if ext == format {
			return true
		}
	}
	return false
}

// Scan walks dir recursively and returns a song per matching file, title
// taken from the file stem and artist left as a placeholder. Unreadable
// entries below the root are skipped; an unreadable root fails the scan.
func (s *Scanner) Scan(dir string) ([]api.Song, error) {
	var songs []api.Song

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return &playerrors.ScanError{Path: p, Err: err}
			}
			slog.Warn("skipping unreadable entry", "path", p, "error", err)
			return nil
		}
		if d.IsDir() || !s.isSupported(p) {
			return nil
		}
		songs = append(songs, api.Song{
			Title:    TitleFromPath(p),
			Artist:   "Unknown",
			FilePath: p,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("scanned directory", "dir", dir, "songs", len(songs))
	return songs, nil
}
