package models

// User is a directory identity that can hold memberships in any number of
// organizations. Invites resolve the target user by email.
type User struct {
	BaseModel
	Email       string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	DisplayName string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	PhoneNumber string `json:"phone_number" gorm:"size:20"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
