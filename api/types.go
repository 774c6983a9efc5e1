package api

import "time"

// Song is a single playlist entry. Duration is in seconds and stays nil
// until the file has been probed by the audio layer.
type Song struct {
	Title    string   `json:"title"`
	Artist   string   `json:"artist"`
	FilePath string   `json:"file_path"`
	Duration *float64 `json:"duration,omitempty"`
}

// DurationTime returns the probed duration, or zero if unknown.
func (s Song) DurationTime() time.Duration {
	if s.Duration == nil {
		return 0
	}
	return time.Duration(*s.Duration * float64(time.Second))
}

// Playlist is an ordered list of songs keyed by its unique name.
type Playlist struct {
	Name      string    `json:"name"`
	Songs     []Song    `json:"songs"`
	CreatedAt time.Time `json:"created_at"`
}

// Len returns the number of songs in the playlist.
func (p *Playlist) Len() int {
	return len(p.Songs)
}

// Song returns the song at index i, or false if i is out of range.
func (p *Playlist) Song(i int) (Song, bool) {
	if i < 0 || i >= len(p.Songs) {
		return Song{}, false
	}
	return p.Songs[i], true
}
