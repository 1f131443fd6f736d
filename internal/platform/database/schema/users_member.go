package schema

// UserMemberTable represents the 'users.member' table
type UserMemberTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	MobileNumber string
	Password     string
	CreatedAt    string
	UpdatedAt    string
}

// UserMember is the schema definition for users.member
var UserMember = UserMemberTable{
	Table:        "users.member",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	MobileNumber: "mobilenumber",
	Password:     "passwordhash",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserMemberTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.MobileNumber, t.Password,
		t.CreatedAt, t.UpdatedAt,
	}
}
