package schema

// CoreGraphicNovelEpisodeTable represents the 'core.graphicnovelepisode' table
type CoreGraphicNovelEpisodeTable struct {
	Table         string
	ID            string
	NovelID       string
	EpisodeNumber string
	IconPath      string
	PDFPath       string
	CreatedAt     string
	UpdatedAt     string
}

// CoreGraphicNovelEpisode is the schema definition for core.graphicnovelepisode
var CoreGraphicNovelEpisode = CoreGraphicNovelEpisodeTable{
	Table:         "core.graphicnovelepisode",
	ID:            "id",
	NovelID:       "novelid",
	EpisodeNumber: "episodenumber",
	IconPath:      "iconpath",
	PDFPath:       "pdfpath",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CoreGraphicNovelEpisodeTable) Columns() []string {
	return []string{
		t.ID, t.NovelID, t.EpisodeNumber, t.IconPath, t.PDFPath,
		t.CreatedAt, t.UpdatedAt,
	}
}
