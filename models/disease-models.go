package models

// NoClassIndex marks a disease the classifier has no output label for.
const NoClassIndex = -1

// Disease describes one disease or pest of a plant species.
//
// PlantID is a soft reference: no foreign key is declared, so a disease may
// point at a plant that does not exist.
type Disease struct {
	ID            uint   `json:"id" yaml:"id" gorm:"primaryKey"`
	Name          string `json:"name" yaml:"name" gorm:"not null"`
	ClassIndex    int    `json:"class_index" yaml:"class_index" gorm:"not null"`
	PlantID       uint   `json:"plant_id" yaml:"plant_id" gorm:"not null"`
	BotanicalName string `json:"botanical_name" yaml:"botanical_name" gorm:"not null"`
	ImageURL      string `json:"image_url" yaml:"image_url" gorm:"column:image_url;not null"`
	Symptoms      string `json:"symptoms" yaml:"symptoms" gorm:"not null"`
	Cause         string `json:"cause" yaml:"cause" gorm:"not null"`
	Propagation   string `json:"propagation" yaml:"propagation" gorm:"not null"`
	Control       string `json:"control" yaml:"control" gorm:"not null"`
}

func (Disease) TableName() string {
	return "disease"
}
