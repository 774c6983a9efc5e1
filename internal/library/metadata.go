package library

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/ksarabia/melodeon/api"
)

// MetadataReader fills in song fields from embedded tags.
type MetadataReader struct{}

// NewMetadataReader creates a new metadata reader
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// Enrich replaces the song's placeholder title and artist with tagged
// values when the file carries them. Files without tags are left as-is
// and do not count as an error.
func (r *MetadataReader) Enrich(song *api.Song) error {
	file, err := os.Open(song.FilePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return nil
	}

	if title := metadata.Title(); title != "" {
		song.Title = title
	}
	if artist := metadata.Artist(); artist != "" {
		song.Artist = artist
	}
	return nil
}
