package entities

import (
	"github.com/google/uuid"
)

const (
	DonationTypeCash    = "CASH"
	DonationTypePackage = "PACKAGE"
)

type DonationPackage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Total       int64     `json:"total"` // must equal the sum of item subtotals

	Items     []*PackageItem `gorm:"foreignKey:PackageID" json:"items"`
	Donations []*Donation    `gorm:"foreignKey:PackageID" json:"-"`
	Timestamp
}

type PackageItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PackageID uuid.UUID `json:"package_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`

	Timestamp
}

type Donation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Amount     int64      `json:"amount"`
	DonorName  string     `json:"donor_name"`
	DonorPhone string     `json:"donor_phone"`
	DonorEmail string     `json:"donor_email,omitempty"`
	Type       string     `json:"type"` // CASH or PACKAGE
	PackageID  *uuid.UUID `json:"package_id,omitempty"`

	DonationPackage *DonationPackage `gorm:"foreignKey:PackageID" json:"donation_package,omitempty"`
	Timestamp
}
