package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BodyMetric is one logged progress entry for a user.
type BodyMetric struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	MeasuredAt     time.Time `gorm:"not null;autoCreateTime" json:"measuredAt"`
	WeightKg       *float64  `json:"weightKg,omitempty"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	MuscleMassKg   *float64  `json:"muscleMassKg,omitempty"`
	BMI            *float64  `gorm:"column:bmi" json:"bmi,omitempty"`
	Notes          *string   `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (m *BodyMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
