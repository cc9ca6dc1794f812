package entities

import (
	"github.com/google/uuid"
)

type HelpRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	NeedTypes   []string  `gorm:"serializer:json" json:"need_types"`
	Description string    `json:"description"`
	Approved    bool      `gorm:"default:false" json:"approved"`

	Timestamp
}
