package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/service"
)

func TestUserService_List(t *testing.T) {
	store, db := newStore()
	seedUsers(db)
	svc := service.NewUserService(store)

	users, err := svc.ListUsers(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []int64{owner.ID, caster.ID, filer.ID}, []int64{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, "Ravi Caster", users[1].FullName)

	_, err = svc.ListUsers(context.Background(), caster)
	assert.True(t, apperr.IsForbidden(err))
}

func TestUserService_ListEmpty(t *testing.T) {
	store, _ := newStore()
	users, err := service.NewUserService(store).ListUsers(context.Background(), owner)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()
	store, db := newStore()
	seedUsers(db)
	svc := service.NewUserService(store)

	u, err := svc.GetUser(ctx, owner, filer.ID)
	require.NoError(t, err)
	assert.Equal(t, "meera", u.Username)

	_, err = svc.GetUser(ctx, owner, 404)
	assert.True(t, apperr.IsNotFound(err))

	// Role is checked before the lookup, so a worker learns nothing about which ids exist.
	_, err = svc.GetUser(ctx, filer, 404)
	assert.True(t, apperr.IsForbidden(err))
}
