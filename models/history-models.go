package models

// History is one prediction event for one user. (UserID, Date) is the
// primary key; LocalURL is unique across every user. Entries are never
// updated or deleted.
type History struct {
	UserID           uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PredictedClassID int    `json:"predicted_class_id" gorm:"not null"`
	LocalURL         string `json:"local_url" gorm:"column:local_url;size:512;uniqueIndex;not null"`
	RemoteURL        string `json:"remote_url" gorm:"column:remote_url;not null"`
	Date             string `json:"date" gorm:"primaryKey;size:64"`
}

func (History) TableName() string {
	return "history"
}
