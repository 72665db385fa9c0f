package database

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astromitra/astro-ai-go/internal/models"
)

func testProfile() *models.Profile {
	return &models.Profile{
		UserID:             "u-1",
		Name:               "Asha",
		Gender:             "female",
		BirthInstant:       time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC),
		Latitude:           28.6139,
		Longitude:          77.2090,
		Place:              "New Delhi",
		Ayanamsa:           models.AyanamsaLahiri,
		HouseSystem:        models.HouseSystemWholeSign,
		UncertaintyMinutes: 10,
	}
}

func TestProfileRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)
	profile := testProfile()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO profiles`).
		WithArgs(pgxmock.AnyArg(), profile.UserID, profile.Name, profile.Gender,
			profile.BirthInstant, profile.Latitude, profile.Longitude, profile.AltitudeM,
			profile.Place, profile.Ayanamsa, profile.HouseSystem, profile.UncertaintyMinutes).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), profile))
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, now, profile.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryGetByIDScopedToUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(`SELECT id, user_id, name`).
		WithArgs("p-1", "someone-else").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "p-1", "someone-else")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryListByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)
	profile := testProfile()
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "name", "gender", "birth_instant", "latitude", "longitude",
		"altitude_m", "place", "ayanamsa", "house_system", "uncertainty_minutes",
		"created_at", "updated_at",
	}).
		AddRow("p-2", "u-1", "Second", profile.Gender, profile.BirthInstant,
			profile.Latitude, profile.Longitude, profile.AltitudeM, profile.Place,
			profile.Ayanamsa, profile.HouseSystem, profile.UncertaintyMinutes, now, now).
		AddRow("p-1", "u-1", "First", profile.Gender, profile.BirthInstant,
			profile.Latitude, profile.Longitude, profile.AltitudeM, profile.Place,
			profile.Ayanamsa, profile.HouseSystem, profile.UncertaintyMinutes, now, now)
	mock.ExpectQuery(`SELECT id, user_id, name`).WithArgs("u-1").WillReturnRows(rows)

	profiles, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Second", profiles[0].Name)
	assert.Equal(t, "First", profiles[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)

	mock.ExpectExec(`DELETE FROM profiles`).
		WithArgs("p-1", "u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), "p-1", "u-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryDeleteMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)

	mock.ExpectExec(`DELETE FROM profiles`).
		WithArgs("p-missing", "u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "p-missing", "u-1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
