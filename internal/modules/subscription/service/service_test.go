package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/internal/modules/subscription/dto"
	"fitlink.app/backend/pkg/apperror"
	pkgdto "fitlink.app/backend/pkg/dto"
)

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*entity.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uuid.UUID]*entity.Subscription)}
}

func (f *fakeSubscriptionRepo) add(userID uuid.UUID, status entity.SubscriptionStatus) *entity.Subscription {
	sub := &entity.Subscription{
		ID:                 uuid.New(),
		UserID:             userID,
		PlanName:           "GRATUITO",
		Status:             status,
		CurrentPeriodStart: time.Now(),
		CurrentPeriodEnd:   time.Now().Add(30 * 24 * time.Hour),
	}
	f.subs[sub.ID] = sub
	return sub
}

func (f *fakeSubscriptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Subscription, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (f *fakeSubscriptionRepo) FindAll(_ context.Context, userID *uuid.UUID, limit, offset int) ([]entity.Subscription, int64, error) {
	var out []entity.Subscription
	for _, sub := range f.subs {
		if userID == nil || sub.UserID == *userID {
			out = append(out, *sub)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return []entity.Subscription{}, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (f *fakeSubscriptionRepo) Update(_ context.Context, sub *entity.Subscription) error {
	f.subs[sub.ID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.subs, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestUpdateSubscriptionRejectsEmptyPayload(t *testing.T) {
	svc := NewService(newFakeSubscriptionRepo())

	_, err := svc.UpdateSubscription(context.Background(), uuid.New(), dto.UpdateSubscriptionRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestUpdateSubscriptionNotFound(t *testing.T) {
	svc := NewService(newFakeSubscriptionRepo())

	_, err := svc.UpdateSubscription(context.Background(), uuid.New(), dto.UpdateSubscriptionRequest{PlanName: strPtr("PREMIUM")})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "subscription not found")
}

func TestUpdateSubscriptionAllowsAnyTransition(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := NewService(repo)

	sub := repo.add(uuid.New(), entity.SubscriptionCanceled)

	// CANCELED back to ACTIVE is a legal administrative edit.
	status := string(entity.SubscriptionActive)
	updated, err := svc.UpdateSubscription(context.Background(), sub.ID, dto.UpdateSubscriptionRequest{
		PlanName: strPtr("PREMIUM"),
		Status:   &status,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionActive, updated.Status)
	assert.Equal(t, "PREMIUM", updated.PlanName)
}

func TestDeleteSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := NewService(repo)

	sub := repo.add(uuid.New(), entity.SubscriptionActive)

	require.NoError(t, svc.DeleteSubscription(context.Background(), sub.ID))

	err := svc.DeleteSubscription(context.Background(), sub.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListSubscriptionsScopesUserRole(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := NewService(repo)

	member := uuid.New()
	repo.add(member, entity.SubscriptionActive)
	repo.add(uuid.New(), entity.SubscriptionTrialing)

	id := &identity.Identity{UserID: member, Role: entity.RoleUser}
	subs, meta, err := svc.ListSubscriptions(context.Background(), id, pkgdto.Pagination{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, member, subs[0].UserID)
	assert.Equal(t, int64(1), meta.TotalItems)

	admin := &identity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
	subs, _, err = svc.ListSubscriptions(context.Background(), admin, pkgdto.Pagination{})
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}
