package schema

// UserCreatorTable represents the 'users.creator' table
type UserCreatorTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	PhoneNumber string
	Password    string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// UserCreator is the schema definition for users.creator
var UserCreator = UserCreatorTable{
	Table:       "users.creator",
	ID:          "id",
	Username:    "username",
	Email:       "email",
	PhoneNumber: "phonenumber",
	Password:    "passwordhash",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t UserCreatorTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.PhoneNumber, t.Password, t.Status,
		t.CreatedAt, t.UpdatedAt,
	}
}
