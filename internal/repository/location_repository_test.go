package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
)

func TestLocationRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLocationRepository(db)
	rows := sqlmock.NewRows([]string{
		"id", "name", "building", "floor", "room", "location_type",
		"accessibility.wheelchair_accessible", "accessibility.has_elevator", "accessibility.has_braille_signage",
	}).
		AddRow("1", "Aula 301", "Edificio A", 3, "301", "classroom", true, true, true).
		AddRow("3", "Biblioteca Central", "Edificio B", 2, "", "library", true, true, true)
	mock.ExpectQuery("SELECT id, name, building").WillReturnRows(rows)

	locations, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, models.LocationClassroom, locations[0].Type)
	assert.True(t, locations[0].Accessibility.HasElevator)
	assert.Equal(t, 3, locations[0].Floor)
	assert.Empty(t, locations[1].Room)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepositoryListError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLocationRepository(db)
	mock.ExpectQuery("SELECT id, name, building").WillReturnError(assert.AnError)

	_, err := repo.List(context.Background())
	require.Error(t, err)
}
