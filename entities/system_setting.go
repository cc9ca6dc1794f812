package entities

type SystemSetting struct {
	Key   string `gorm:"primary_key" json:"key"`
	Value string `json:"value"`

	Timestamp
}
