package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutPlan is authored by a trainer for a target user.
type WorkoutPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TrainerID   uuid.UUID `gorm:"type:uuid;index;not null" json:"trainerId"`
	Trainer     *Trainer  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description *string   `gorm:"size:1000" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DietPlan is authored by a nutritionist for a target user.
type DietPlan struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	NutritionistID uuid.UUID     `gorm:"type:uuid;index;not null" json:"nutritionistId"`
	Nutritionist   *Nutritionist `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID         uuid.UUID     `gorm:"type:uuid;index;not null" json:"userId"`
	Title          string        `gorm:"size:120;not null" json:"title"`
	Description    *string       `gorm:"size:1000" json:"description,omitempty"`
	DailyCalories  *int          `json:"dailyCalories,omitempty"`
	IsActive       bool          `gorm:"not null;default:true" json:"isActive"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
