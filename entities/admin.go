package entities

import (
	"github.com/google/uuid"
)

type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"unique" json:"username"`
	Password string    `json:"-"`

	Timestamp
}
