package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/internal/modules/diet/dto"
	"fitlink.app/backend/pkg/apperror"
)

type fakeDietRepo struct {
	plans map[uuid.UUID]*entity.DietPlan
}

func newFakeDietRepo() *fakeDietRepo {
	return &fakeDietRepo{plans: make(map[uuid.UUID]*entity.DietPlan)}
}

func (f *fakeDietRepo) Create(_ context.Context, plan *entity.DietPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeDietRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DietPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *plan
	return &copied, nil
}

func (f *fakeDietRepo) FindAll(_ context.Context, userID *uuid.UUID, limit, offset int) ([]entity.DietPlan, int64, error) {
	var out []entity.DietPlan
	for _, plan := range f.plans {
		if userID == nil || plan.UserID == *userID {
			out = append(out, *plan)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return []entity.DietPlan{}, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (f *fakeDietRepo) Update(_ context.Context, plan *entity.DietPlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeDietRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.plans, id)
	return nil
}

func (f *fakeDietRepo) CountByNutritionistID(_ context.Context, nutritionistID uuid.UUID, activeOnly bool) (int64, error) {
	var count int64
	for _, plan := range f.plans {
		if plan.NutritionistID != nutritionistID {
			continue
		}
		if activeOnly && !plan.IsActive {
			continue
		}
		count++
	}
	return count, nil
}

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

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, _ []uuid.UUID) ([]entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByNationalID(_ context.Context, _ string) (*entity.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) { return nil, nil }

func (f *fakeUserRepo) SearchProfessionals(_ context.Context, _ string, _ []entity.Role, _ int) ([]entity.User, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func registeredNutritionist(t *testing.T, nutritionists *fakeNutritionistRepo, users *fakeUserRepo) (identity.Identity, *entity.Nutritionist) {
	t.Helper()

	user := &entity.User{Email: "nutri@example.com", Role: entity.RoleNutritionist, IsActive: true}
	require.NoError(t, users.Create(context.Background(), user))

	nutritionist := &entity.Nutritionist{UserID: user.ID, ProfessionalRegistration: strPtr("CRN-5678")}
	require.NoError(t, nutritionists.Create(context.Background(), nutritionist))

	return identity.Identity{UserID: user.ID, Email: user.Email, Role: entity.RoleNutritionist}, nutritionist
}

func TestCreateDietWithoutNutritionistProfile(t *testing.T) {
	svc := NewService(newFakeDietRepo(), newFakeNutritionistRepo(), newFakeUserRepo())

	id := identity.Identity{UserID: uuid.New(), Role: entity.RoleNutritionist}
	_, err := svc.CreateDiet(context.Background(), id, dto.CreateDietRequest{Title: "Cutting phase"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Contains(t, err.Error(), "nutritionist profile required")
}

func TestCreateDietWithoutRegistration(t *testing.T) {
	nutritionists := newFakeNutritionistRepo()
	users := newFakeUserRepo()
	svc := NewService(newFakeDietRepo(), nutritionists, users)

	user := &entity.User{Email: "nutri@example.com", Role: entity.RoleNutritionist}
	require.NoError(t, users.Create(context.Background(), user))
	require.NoError(t, nutritionists.Create(context.Background(), &entity.Nutritionist{UserID: user.ID}))

	id := identity.Identity{UserID: user.ID, Role: entity.RoleNutritionist}
	_, err := svc.CreateDiet(context.Background(), id, dto.CreateDietRequest{Title: "Cutting phase"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "professional registration is required")
}

func TestCreateDietCarriesCalories(t *testing.T) {
	repo := newFakeDietRepo()
	nutritionists := newFakeNutritionistRepo()
	users := newFakeUserRepo()
	svc := NewService(repo, nutritionists, users)

	id, nutritionist := registeredNutritionist(t, nutritionists, users)

	plan, err := svc.CreateDiet(context.Background(), id, dto.CreateDietRequest{
		Title:         "Cutting phase",
		DailyCalories: intPtr(2200),
	})

	require.NoError(t, err)
	assert.Equal(t, nutritionist.ID, plan.NutritionistID)
	assert.Equal(t, id.UserID, plan.UserID)
	assert.Equal(t, 2200, *plan.DailyCalories)
}

func TestUpdateDietOwnershipAfterExistence(t *testing.T) {
	repo := newFakeDietRepo()
	nutritionists := newFakeNutritionistRepo()
	users := newFakeUserRepo()
	svc := NewService(repo, nutritionists, users)

	owner, nutritionist := registeredNutritionist(t, nutritionists, users)
	plan, err := svc.CreateDiet(context.Background(), owner, dto.CreateDietRequest{Title: "Cutting phase"})
	require.NoError(t, err)
	repo.plans[plan.ID].Nutritionist = nutritionist

	// Missing plan wins over ownership.
	other := identity.Identity{UserID: uuid.New(), Role: entity.RoleNutritionist}
	_, err = svc.UpdateDiet(context.Background(), other, uuid.New(), dto.UpdateDietRequest{Title: strPtr("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.UpdateDiet(context.Background(), other, plan.ID, dto.UpdateDietRequest{Title: strPtr("Hijacked")})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Contains(t, err.Error(), "not allowed to modify this diet")

	admin := identity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
	updated, err := svc.UpdateDiet(context.Background(), admin, plan.ID, dto.UpdateDietRequest{DailyCalories: intPtr(1800)})
	require.NoError(t, err)
	assert.Equal(t, 1800, *updated.DailyCalories)
}

func TestDeleteDietByNonOwner(t *testing.T) {
	repo := newFakeDietRepo()
	nutritionists := newFakeNutritionistRepo()
	users := newFakeUserRepo()
	svc := NewService(repo, nutritionists, users)

	owner, nutritionist := registeredNutritionist(t, nutritionists, users)
	plan, err := svc.CreateDiet(context.Background(), owner, dto.CreateDietRequest{Title: "Cutting phase"})
	require.NoError(t, err)
	repo.plans[plan.ID].Nutritionist = nutritionist

	other := identity.Identity{UserID: uuid.New(), Role: entity.RoleNutritionist}
	err = svc.DeleteDiet(context.Background(), other, plan.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Contains(t, err.Error(), "not allowed to delete this diet")

	require.NoError(t, svc.DeleteDiet(context.Background(), owner, plan.ID))
}
