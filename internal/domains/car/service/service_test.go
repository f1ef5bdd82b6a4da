package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carshare/config"
	"carshare/infras/otel/mocks"
	"carshare/shared/cache"
	cacheMocks "carshare/shared/cache/mocks"
	"carshare/shared/constant"
	"carshare/shared/failure"

	carmocks "carshare/internal/domains/car/mocks"
	"carshare/internal/domains/car/model"
	"carshare/internal/domains/car/model/dto"
	"carshare/internal/domains/car/service"
)

type testEnv struct {
	repo  *carmocks.MockCar
	cache *cacheMocks.MockRedisCache
	svc   service.Car
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := carmocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(repo, &config.Config{}, mockCache, mocks.NewOtel())

	return testEnv{repo: repo, cache: mockCache, svc: svc}
}

func ownerCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func strangerCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "stranger")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func adminCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func testCar() model.Car {
	return model.Car{
		ID:              "car-1",
		OwnerID:         "owner-1",
		Make:            "Toyota",
		Model:           "Yaris",
		Year:            2022,
		DailyRate:       120,
		SecurityDeposit: 5000,
		Active:          true,
	}
}

func TestCarServiceCreateStampsOwner(t *testing.T) {
	env := newTestEnv(t)

	env.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car model.Car) error {
			assert.Equal(t, "owner-1", car.OwnerID)
			assert.Equal(t, "owner-1", car.CreatedBy)
			assert.True(t, car.Active)

			return nil
		})

	err := env.svc.Create(ownerCtx(), dto.CreateCarRequest{
		Make:      "Toyota",
		Model:     "Yaris",
		Year:      2022,
		DailyRate: 120,
	})
	require.NoError(t, err)
}

func TestCarServiceGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Car{}, nil)

	_, err := env.svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCarServiceUpdateOwnerOnly(t *testing.T) {
	env := newTestEnv(t)

	env.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testCar(), nil)

	rate := int64(200)
	err := env.svc.Update(strangerCtx(), dto.UpdateCarRequest{DailyRate: &rate}, "car-1")
	require.Error(t, err)
	assert.Equal(t, 403, failure.GetCode(err))
}

func TestCarServiceUpdateByOwner(t *testing.T) {
	env := newTestEnv(t)

	env.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testCar(), nil)

	env.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	rate := int64(200)
	err := env.svc.Update(ownerCtx(), dto.UpdateCarRequest{DailyRate: &rate}, "car-1")
	require.NoError(t, err)
}

func TestCarServiceDeleteByAdmin(t *testing.T) {
	env := newTestEnv(t)

	env.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testCar(), nil)

	env.repo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	err := env.svc.Delete(adminCtx(), "car-1")
	require.NoError(t, err)
}
