package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

// subscriptionPeriod is the billing window granted on onboarding.
const subscriptionPeriod = 30 * 24 * time.Hour

// CompleteParams carries the already-validated onboarding payload into
// the transaction.
type CompleteParams struct {
	User         *entity.User
	HeightCm     float64
	WeightKg     float64
	BMI          float64
	MetricNote   string
	PlanName     string
	Bio          *string
	YearsExp     *int
	Registration *string
}

// Result is what the transaction produced. Professional is the
// upserted Trainer or Nutritionist, nil for regular users.
type Result struct {
	Profile      *entity.UserProfile
	Metric       *entity.BodyMetric
	Subscription *entity.Subscription
	Professional any
}

// OnboardingRepository runs the multi-table onboarding write as a
// single transaction.
type OnboardingRepository interface {
	Complete(ctx context.Context, params CompleteParams) (*Result, error)
}

type onboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

func (r *onboardingRepository) Complete(ctx context.Context, params CompleteParams) (*Result, error) {
	var result Result

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := r.upsertProfile(tx, params)
		if err != nil {
			return err
		}
		result.Profile = profile

		metric := &entity.BodyMetric{
			UserID:   params.User.ID,
			WeightKg: &params.WeightKg,
			BMI:      &params.BMI,
			Notes:    &params.MetricNote,
		}
		if err := tx.Create(metric).Error; err != nil {
			return err
		}
		result.Metric = metric

		sub, err := r.activateSubscription(tx, params)
		if err != nil {
			return err
		}
		result.Subscription = sub

		professional, err := r.upsertProfessional(tx, params)
		if err != nil {
			return err
		}
		result.Professional = professional

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *onboardingRepository) upsertProfile(tx *gorm.DB, params CompleteParams) (*entity.UserProfile, error) {
	fullName := params.User.Email
	if params.User.Name != nil && *params.User.Name != "" {
		fullName = *params.User.Name
	}

	var profile entity.UserProfile
	err := tx.First(&profile, "user_id = ?", params.User.ID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = entity.UserProfile{
			UserID:   params.User.ID,
			FullName: fullName,
			HeightCm: &params.HeightCm,
			WeightKg: &params.WeightKg,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}

	profile.FullName = fullName
	profile.HeightCm = &params.HeightCm
	profile.WeightKg = &params.WeightKg
	if err := tx.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// activateSubscription renews the user's most recent subscription, or
// opens a fresh one when none exists.
func (r *onboardingRepository) activateSubscription(tx *gorm.DB, params CompleteParams) (*entity.Subscription, error) {
	now := time.Now()

	var sub entity.Subscription
	err := tx.Where("user_id = ?", params.User.ID).Order("created_at DESC").First(&sub).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		sub = entity.Subscription{
			UserID:             params.User.ID,
			PlanName:           params.PlanName,
			Status:             entity.SubscriptionActive,
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   now.Add(subscriptionPeriod),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}

	sub.PlanName = params.PlanName
	sub.Status = entity.SubscriptionActive
	sub.CurrentPeriodStart = now
	sub.CurrentPeriodEnd = now.Add(subscriptionPeriod)
	if err := tx.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *onboardingRepository) upsertProfessional(tx *gorm.DB, params CompleteParams) (any, error) {
	switch params.User.Role {
	case entity.RoleTrainer:
		var trainer entity.Trainer
		err := tx.First(&trainer, "user_id = ?", params.User.ID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			trainer = entity.Trainer{UserID: params.User.ID}
		}
		applyProfessionalFields(&trainer.ProfessionalRegistration, &trainer.Bio, &trainer.YearsExperience, params)
		if err := tx.Save(&trainer).Error; err != nil {
			return nil, err
		}
		return &trainer, nil
	case entity.RoleNutritionist:
		var nutritionist entity.Nutritionist
		err := tx.First(&nutritionist, "user_id = ?", params.User.ID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			nutritionist = entity.Nutritionist{UserID: params.User.ID}
		}
		applyProfessionalFields(&nutritionist.ProfessionalRegistration, &nutritionist.Bio, &nutritionist.YearsExperience, params)
		if err := tx.Save(&nutritionist).Error; err != nil {
			return nil, err
		}
		return &nutritionist, nil
	}
	return nil, nil
}

func applyProfessionalFields(registration **string, bio **string, yearsExp **int, params CompleteParams) {
	if params.Registration != nil {
		*registration = params.Registration
	}
	if params.Bio != nil {
		*bio = params.Bio
	}
	if params.YearsExp != nil {
		*yearsExp = params.YearsExp
	}
}
