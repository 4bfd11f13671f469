package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrInvalidAnalysis is returned when a required field is missing from a
	// create request. The message is refined per field at the call site.
	ErrInvalidAnalysis = errors.New("invalid analysis request")
)

// StringArray is a custom type to handle JSON array in GORM
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
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
		*a = []string{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// JSONMap stores an opaque JSON object in a text column. The analysis step
// produces the stage snapshot and care instructions; this service passes them
// through verbatim and never interprets their fields.
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
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
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// PlantAnalysis is one completed assessment of a tracked plant. It is written
// once and never updated. ActionItemIDs is a best-effort index over the task
// records the analysis spawned: tasks are written after the analysis record
// and deleted independently of it, so readers resolve the list defensively
// and drop identifiers with no matching task.
type PlantAnalysis struct {
	ID               string      `json:"id" gorm:"primaryKey"`
	UserID           string      `json:"user_id" gorm:"index;not null"`
	PlantID          string      `json:"plant_id" gorm:"index;not null"`
	PlantTypeID      string      `json:"plant_type_id"` // Denormalized from the plant at creation time
	AnalysisDate     time.Time   `json:"analysis_date"`
	CurrentStage     JSONMap     `json:"current_stage" gorm:"type:text"`
	CareInstructions JSONMap     `json:"care_instructions" gorm:"type:text"`
	NextCheckupDate  *time.Time  `json:"next_checkup_date,omitempty"`
	ActionItemIDs    StringArray `json:"action_item_ids" gorm:"type:text"`
	CreatedAt        time.Time   `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PlantAnalysis) TableName() string {
	return "plant_analyses"
}
