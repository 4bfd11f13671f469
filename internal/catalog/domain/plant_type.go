package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

var ErrPlantTypeNotFound = errors.New("plant type not found")

// LocalizedNames maps a language code to the plant's name in that language.
// Stored as a JSON text column.
type LocalizedNames map[string]string

// Value implements driver.Valuer
func (n LocalizedNames) Value() (driver.Value, error) {
	if len(n) == 0 {
		return "{}", nil
	}
	return json.Marshal(n)
}

// Scan implements sql.Scanner
func (n *LocalizedNames) Scan(value interface{}) error {
	if value == nil {
		*n = LocalizedNames{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*n = LocalizedNames{}
		return nil
	}
	return json.Unmarshal(bytes, n)
}

// PlantType is one catalog entry, populated by the external scraper from
// Wikidata and iNaturalist. This service only reads the collection.
type PlantType struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	CommonName     string         `json:"common_name" gorm:"index;not null"`
	ScientificName string         `json:"scientific_name"`
	PlantType      string         `json:"plant_type"` // e.g. "herb", "shrub", "succulent"
	ImageURL       string         `json:"image_url,omitempty"`
	WikiDataID     string         `json:"wikidata_id,omitempty"`
	Names          LocalizedNames `json:"names,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (PlantType) TableName() string {
	return "plant_types"
}
