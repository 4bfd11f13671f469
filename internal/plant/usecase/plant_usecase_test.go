package usecase

import (
	"testing"

	"greenur-backend/internal/plant/domain"
	"greenur-backend/internal/plant/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (PlantUsecase, *domain.TrackedPlant) {
	t.Helper()
	uc := NewPlantUsecase(repository.NewMemoryPlantRepository())
	plant, err := uc.CreatePlant("user-a", "type-tulsi", "Holy Basil", "")
	require.NoError(t, err)
	return uc, plant
}

func TestCreatePlantDefaultsToHealthy(t *testing.T) {
	_, plant := newFixture(t)
	assert.Equal(t, domain.HealthStatusHealthy, plant.HealthStatus)
	assert.NotEmpty(t, plant.ID)
}

func TestGetPlantByIDOwnershipIsIndistinguishableFromAbsence(t *testing.T) {
	uc, plant := newFixture(t)

	_, errForeign := uc.GetPlantByID("user-b", plant.ID)
	_, errMissing := uc.GetPlantByID("user-b", "no-such-plant")

	assert.ErrorIs(t, errForeign, domain.ErrPlantNotFound)
	assert.Equal(t, errMissing, errForeign)
}

func TestVerifyOwnershipReturnsPlantType(t *testing.T) {
	uc, plant := newFixture(t)

	plantTypeID, err := uc.VerifyOwnership("user-a", plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "type-tulsi", plantTypeID)

	_, err = uc.VerifyOwnership("user-b", plant.ID)
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestUpdatePlantPartialFields(t *testing.T) {
	uc, plant := newFixture(t)

	status := "needs_attention"
	updated, err := uc.UpdatePlant("user-a", plant.ID, PlantUpdateRequest{HealthStatus: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.HealthStatus("needs_attention"), updated.HealthStatus)
	assert.Equal(t, "Holy Basil", updated.Nickname)
}

func TestDeletePlantScopedToOwner(t *testing.T) {
	uc, plant := newFixture(t)

	assert.ErrorIs(t, uc.DeletePlant("user-b", plant.ID), domain.ErrPlantNotFound)
	require.NoError(t, uc.DeletePlant("user-a", plant.ID))

	_, err := uc.GetPlantByID("user-a", plant.ID)
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}
