package audio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	playerrors "github.com/ksarabia/melodeon/pkg/errors"
)

// DecodableFormats returns the extensions the decoder can actually play.
// This is narrower than the scanner's allow-list: m4a files are collected
// during scans but fail at play time with ErrInvalidFormat.
func DecodableFormats() []string {
	return []string{".mp3", ".wav", ".flac", ".ogg"}
}

// CanDecode checks whether a file has a decodable extension.
func CanDecode(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, format := range DecodableFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// DecodeAudio decodes an audio file based on its extension
func DecodeAudio(r io.ReadSeekCloser, filePath string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".mp3":
		return mp3.Decode(r)
	case ".wav":
		return wav.Decode(r)
	case ".flac":
		return flac.Decode(r)
	case ".ogg":
		return vorbis.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", playerrors.ErrInvalidFormat, ext)
	}
}
