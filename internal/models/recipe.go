package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
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

	return json.Unmarshal(bytes, a)
}

// SavedRecipe is one generated recipe idea kept in the requesting user's history.
// Body holds the model output verbatim; ArchiveKey points at the S3 copy when
// archiving succeeded.
type SavedRecipe struct {
	ID          uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID      uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Body        string           `gorm:"type:text;not null" json:"body"`
	ModelID     string           `gorm:"size:255" json:"model_id"`
	ArchiveKey  string           `gorm:"size:255" json:"-"`
	Embedding   pgvector.Vector  `gorm:"type:vector(4)" json:"-"`
}

// BeforeCreate assigns an ID when one is not provided.
func (r *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
