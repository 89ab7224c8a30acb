package impl

import (
	"context"
	"testing"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	mockRepo "bpaml/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAthleteService_List(t *testing.T) {
	athleteRepo := mockRepo.NewMockAthleteRepository(t)
	service := NewAthleteService(athleteRepo)
	ctx := context.Background()
	expected := []*entity.Athlete{{StravaID: 1}, {StravaID: 2}}

	athleteRepo.EXPECT().List(ctx).Return(expected, nil)

	athletes, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, athletes)
}

func TestAthleteService_Get_NotFound(t *testing.T) {
	athleteRepo := mockRepo.NewMockAthleteRepository(t)
	service := NewAthleteService(athleteRepo)
	ctx := context.Background()

	athleteRepo.EXPECT().FindByStravaID(ctx, int64(9)).Return(nil, repository.ErrAthleteNotFound)

	athlete, err := service.Get(ctx, 9)
	assert.Nil(t, athlete)
	assert.True(t, errors.Is(err, domainerrors.ErrAthleteNotFound))
}
