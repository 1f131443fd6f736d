package schema

// CoreGraphicNovelTable represents the 'core.graphicnovel' table
type CoreGraphicNovelTable struct {
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

// CoreGraphicNovel is the schema definition for core.graphicnovel
var CoreGraphicNovel = CoreGraphicNovelTable{
	Table:         "core.graphicnovel",
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
func (t CoreGraphicNovelTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.IconPath, t.OwnerID, t.CreatedByRole,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
