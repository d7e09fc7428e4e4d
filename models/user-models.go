package models

// User is an account holder. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	Email     string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string `json:"password" gorm:"not null"`
}

func (User) TableName() string {
	return "user"
}

// AccountView is the outward form of a User without the password hash.
type AccountView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u User) Redacted() AccountView {
	return AccountView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
