package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role distinguishes what a user is allowed to do.
type Role string

const (
	RoleUser         Role = "USER"
	RoleTrainer      Role = "TRAINER"
	RoleNutritionist Role = "NUTRITIONIST"
	RoleAdmin        Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleTrainer, RoleNutritionist, RoleAdmin:
		return true
	}
	return false
}

// IsProfessional reports whether the role may author plans.
func (r Role) IsProfessional() bool {
	return r == RoleTrainer || r == RoleNutritionist
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name         *string   `gorm:"size:100" json:"name,omitempty"`
	Username     *string   `gorm:"size:50;uniqueIndex" json:"username,omitempty"`
	NationalID   *string   `gorm:"size:11;uniqueIndex;column:national_id" json:"nationalId,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:USER" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the demographic data collected during onboarding.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	FullName  string    `gorm:"size:100;not null" json:"fullName"`
	HeightCm  *float64  `json:"heightCm,omitempty"`
	WeightKg  *float64  `json:"weightKg,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
