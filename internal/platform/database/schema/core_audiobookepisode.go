package schema

// CoreAudiobookEpisodeTable represents the 'core.audiobookepisode' table
type CoreAudiobookEpisodeTable struct {
	Table         string
	ID            string
	AudiobookID   string
	EpisodeNumber string
	IconPath      string
	YoutubeURL    string
	CreatedAt     string
	UpdatedAt     string
}

// CoreAudiobookEpisode is the schema definition for core.audiobookepisode
var CoreAudiobookEpisode = CoreAudiobookEpisodeTable{
	Table:         "core.audiobookepisode",
	ID:            "id",
	AudiobookID:   "audiobookid",
	EpisodeNumber: "episodenumber",
	IconPath:      "iconpath",
	YoutubeURL:    "youtubeurl",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CoreAudiobookEpisodeTable) Columns() []string {
	return []string{
		t.ID, t.AudiobookID, t.EpisodeNumber, t.IconPath, t.YoutubeURL,
		t.CreatedAt, t.UpdatedAt,
	}
}
