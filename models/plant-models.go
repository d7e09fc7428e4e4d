package models

// Plant is a reference species record. Plants are seeded out of band and
// only read through the API.
type Plant struct {
	ID            uint   `json:"id" yaml:"id" gorm:"primaryKey"`
	Name          string `json:"name" yaml:"name" gorm:"not null"`
	ImageURL      string `json:"image_url" yaml:"image_url" gorm:"column:image_url;not null"`
	BotanicalName string `json:"botanical_name" yaml:"botanical_name" gorm:"size:255;uniqueIndex;not null"`
	GeneralInfo   string `json:"general_info" yaml:"general_info" gorm:"not null"`
}

func (Plant) TableName() string {
	return "plant"
}
