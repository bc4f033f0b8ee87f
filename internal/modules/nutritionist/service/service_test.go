package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/modules/nutritionist/dto"
	"fitlink.app/backend/pkg/apperror"
)

type fakeNutritionistRepo struct {
	nutritionists map[uuid.UUID]*entity.Nutritionist
}

func newFakeNutritionistRepo() *fakeNutritionistRepo {
	return &fakeNutritionistRepo{nutritionists: make(map[uuid.UUID]*entity.Nutritionist)}
}

func (f *fakeNutritionistRepo) Create(_ context.Context, nutritionist *entity.Nutritionist) error {
	if nutritionist.ID == uuid.Nil {
		nutritionist.ID = uuid.New()
	}
	f.nutritionists[nutritionist.UserID] = nutritionist
	return nil
}

func (f *fakeNutritionistRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Nutritionist, error) {
	nutritionist, ok := f.nutritionists[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return nutritionist, nil
}

func (f *fakeNutritionistRepo) Update(_ context.Context, nutritionist *entity.Nutritionist) error {
	f.nutritionists[nutritionist.UserID] = nutritionist
	return nil
}

func (f *fakeNutritionistRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(f.nutritionists, userID)
	return nil
}

type fakeDietCounts struct {
	total  int64
	active int64
}

func (f *fakeDietCounts) Create(_ context.Context, _ *entity.DietPlan) error { return nil }
func (f *fakeDietCounts) FindByID(_ context.Context, _ uuid.UUID) (*entity.DietPlan, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDietCounts) FindAll(_ context.Context, _ *uuid.UUID, _, _ int) ([]entity.DietPlan, int64, error) {
	return nil, 0, nil
}
func (f *fakeDietCounts) Update(_ context.Context, _ *entity.DietPlan) error { return nil }
func (f *fakeDietCounts) Delete(_ context.Context, _ uuid.UUID) error        { return nil }
func (f *fakeDietCounts) CountByNutritionistID(_ context.Context, _ uuid.UUID, activeOnly bool) (int64, error) {
	if activeOnly {
		return f.active, nil
	}
	return f.total, nil
}

func strPtr(s string) *string { return &s }

func TestUpdateProfileAcceptsLegacyCrnAlias(t *testing.T) {
	repo := newFakeNutritionistRepo()
	svc := NewService(repo, &fakeDietCounts{})

	profile, err := svc.UpdateProfile(context.Background(), uuid.New(), dto.UpdateNutritionistProfileRequest{
		Crn: strPtr("CRN-5678"),
	})

	require.NoError(t, err)
	assert.Equal(t, "CRN-5678", *profile.ProfessionalRegistration)
}

func TestUpdateProfileCanonicalKeyWinsOverAlias(t *testing.T) {
	repo := newFakeNutritionistRepo()
	svc := NewService(repo, &fakeDietCounts{})

	profile, err := svc.UpdateProfile(context.Background(), uuid.New(), dto.UpdateNutritionistProfileRequest{
		ProfessionalRegistration: strPtr("CRN-1111"),
		Crn:                      strPtr("CRN-2222"),
	})

	require.NoError(t, err)
	assert.Equal(t, "CRN-1111", *profile.ProfessionalRegistration)
}

func TestUpdateProfileCreateWithoutRegistration(t *testing.T) {
	svc := NewService(newFakeNutritionistRepo(), &fakeDietCounts{})

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), dto.UpdateNutritionistProfileRequest{
		Bio: strPtr("Sports nutrition"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "professional registration is required")
}

func TestGetDashboardCountsPlans(t *testing.T) {
	repo := newFakeNutritionistRepo()
	svc := NewService(repo, &fakeDietCounts{total: 5, active: 2})

	userID := uuid.New()
	require.NoError(t, repo.Create(context.Background(), &entity.Nutritionist{
		UserID:                   userID,
		ProfessionalRegistration: strPtr("CRN-5678"),
	}))

	dashboard, err := svc.GetDashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), dashboard.TotalPlans)
	assert.Equal(t, int64(2), dashboard.ActivePlans)
}
