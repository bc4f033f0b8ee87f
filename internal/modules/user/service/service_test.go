package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/modules/user/dto"
	"fitlink.app/backend/pkg/apperror"
)

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

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]entity.User, error) {
	var out []entity.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username != nil && *user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByNationalID(_ context.Context, nationalID string) (*entity.User, error) {
	for _, user := range f.users {
		if user.NationalID != nil && *user.NationalID == nationalID {
			return user, nil
		}
	}
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

func (f *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) SearchProfessionals(_ context.Context, _ string, _ []entity.Role, _ int) ([]entity.User, error) {
	return nil, nil
}

type fakeTrainerRepo struct {
	trainers map[uuid.UUID]*entity.Trainer
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{trainers: make(map[uuid.UUID]*entity.Trainer)}
}

func (f *fakeTrainerRepo) Create(_ context.Context, trainer *entity.Trainer) error {
	if trainer.ID == uuid.Nil {
		trainer.ID = uuid.New()
	}
	f.trainers[trainer.UserID] = trainer
	return nil
}

func (f *fakeTrainerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Trainer, error) {
	trainer, ok := f.trainers[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return trainer, nil
}

func (f *fakeTrainerRepo) Update(_ context.Context, trainer *entity.Trainer) error {
	f.trainers[trainer.UserID] = trainer
	return nil
}

func (f *fakeTrainerRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(f.trainers, userID)
	return nil
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

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, Role: role, IsActive: true, PasswordHash: "x"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func newTestService(users *fakeUserRepo) Service {
	return NewService(users, newFakeTrainerRepo(), newFakeNutritionistRepo(), nil)
}

func TestGetMeUnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.GetMe(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetMeOmitsPasswordHash(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "ana@example.com", entity.RoleUser)
	svc := newTestService(users)

	me, err := svc.GetMe(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), me.ID)
	assert.Equal(t, "ana@example.com", me.Email)
}

func TestUpdateMeRejectsEmptyPayload(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "ana@example.com", entity.RoleUser)
	svc := newTestService(users)

	_, err := svc.UpdateMe(context.Background(), user.ID, dto.UpdateMeRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "no valid fields provided for update")
}

func TestUpdateMeRejectsTakenEmail(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "taken@example.com", entity.RoleUser)
	user := seedUser(t, users, "ana@example.com", entity.RoleUser)
	svc := newTestService(users)

	_, err := svc.UpdateMe(context.Background(), user.ID, dto.UpdateMeRequest{Email: strPtr("taken@example.com")})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "e-mail already in use")
}

func TestUpdateMeAllowsKeepingOwnEmail(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "ana@example.com", entity.RoleUser)
	svc := newTestService(users)

	me, err := svc.UpdateMe(context.Background(), user.ID, dto.UpdateMeRequest{
		Email: strPtr("ana@example.com"),
		Name:  strPtr("Ana Silva"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", *me.Name)
}

func TestUpdateMeRehashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "ana@example.com", entity.RoleUser)
	svc := newTestService(users)

	_, err := svc.UpdateMe(context.Background(), user.ID, dto.UpdateMeRequest{Password: strPtr("newsecret")})
	require.NoError(t, err)

	stored := users.users[user.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")))
}

func TestDeleteMe(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "ana@example.com", entity.RoleUser)
	svc := newTestService(users)

	require.NoError(t, svc.DeleteMe(context.Background(), user.ID))

	err := svc.DeleteMe(context.Background(), user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.UpdateUserRole(context.Background(), uuid.New(), entity.RoleTrainer)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateUserRoleCreatesProfessionalProfile(t *testing.T) {
	users := newFakeUserRepo()
	trainers := newFakeTrainerRepo()
	nutritionists := newFakeNutritionistRepo()
	svc := NewService(users, trainers, nutritionists, nil)

	user := seedUser(t, users, "ana@example.com", entity.RoleUser)

	resp, err := svc.UpdateUserRole(context.Background(), user.ID, entity.RoleTrainer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTrainer, resp.Role)

	trainer, err := trainers.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, trainer.HasRegistration())

	// Switching again must not create a second row or error.
	_, err = svc.UpdateUserRole(context.Background(), user.ID, entity.RoleTrainer)
	require.NoError(t, err)
	assert.Len(t, trainers.trainers, 1)
}
