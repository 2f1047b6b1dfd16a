package impl

import (
	"context"
	"testing"

	mockRepo "github.com/IbrahimMurad/alx-files-manager/internal/mocks/repository"
	mockSvc "github.com/IbrahimMurad/alx-files-manager/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppService_StatusAndStats(t *testing.T) {
	ctx := context.Background()
	health := mockRepo.NewMockHealthChecker(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	fileRepo := mockRepo.NewMockFileRepository(t)
	storage := mockSvc.NewMockBlobStorage(t)

	svc := NewAppService(AppServiceParams{
		Health:   health,
		UserRepo: userRepo,
		FileRepo: fileRepo,
		Storage:  storage,
		Logger:   newDiscardLogger(),
	})

	health.EXPECT().Ping(ctx).Return(nil)
	storage.EXPECT().Ping(ctx).Return(errors.New("permission denied"))

	status := svc.Status(ctx)
	assert.True(t, status.DB)
	assert.False(t, status.Storage)

	userRepo.EXPECT().Count(ctx).Return(int64(2), nil)
	fileRepo.EXPECT().Count(ctx).Return(int64(7), nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(7), stats.Files)
}
