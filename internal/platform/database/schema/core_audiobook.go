package schema

// CoreAudiobookTable represents the 'core.audiobook' table
type CoreAudiobookTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	IconPath      string
	OwnerID       string
	CreatedByRole string
	Status        string
	CreatedAt     string
	UpdatedAt     string
}

// CoreAudiobook is the schema definition for core.audiobook
var CoreAudiobook = CoreAudiobookTable{
	Table:         "core.audiobook",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	IconPath:      "iconpath",
	OwnerID:       "ownerid",
	CreatedByRole: "createdbyrole",
	Status:        "status",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CoreAudiobookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.IconPath, t.OwnerID, t.CreatedByRole,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
