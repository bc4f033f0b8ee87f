package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trainer is the professional profile gating workout-plan authorship.
// At most one row per user.
type Trainer struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	ProfessionalRegistration *string   `gorm:"size:50" json:"professionalRegistration,omitempty"`
	Bio                      *string   `gorm:"type:text" json:"bio,omitempty"`
	YearsExperience          *int      `json:"yearsExperience,omitempty"`
	Approved                 bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// HasRegistration reports whether a non-empty registration number is set.
func (t *Trainer) HasRegistration() bool {
	return t.ProfessionalRegistration != nil && *t.ProfessionalRegistration != ""
}

// Nutritionist mirrors Trainer for diet-plan authorship.
type Nutritionist struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	ProfessionalRegistration *string   `gorm:"size:50" json:"professionalRegistration,omitempty"`
	Bio                      *string   `gorm:"type:text" json:"bio,omitempty"`
	YearsExperience          *int      `json:"yearsExperience,omitempty"`
	Approved                 bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (n *Nutritionist) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (n *Nutritionist) HasRegistration() bool {
	return n.ProfessionalRegistration != nil && *n.ProfessionalRegistration != ""
}
