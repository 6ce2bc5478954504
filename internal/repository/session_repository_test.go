package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestSessionRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	rows := sqlmock.NewRows([]string{"id", "subject", "professor", "room", "building", "start_time", "end_time", "day_of_week", "session_type"}).
		AddRow("1", "Algoritmos y Estructuras de Datos", "Prof. María García", "301", "Edificio A", "14:00", "16:00", "Monday", "lecture").
		AddRow("2", "Bases de Datos", "Prof. Carlos Ruiz", "205", "Edificio B", "08:00", "10:00", "Monday", "lecture")
	mock.ExpectQuery("SELECT id, subject, professor").WillReturnRows(rows)

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Algoritmos y Estructuras de Datos", sessions[0].Subject)
	assert.Equal(t, models.Monday, sessions[0].Day)
	assert.Equal(t, "08:00", sessions[1].StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryListError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	mock.ExpectQuery("SELECT id, subject, professor").WillReturnError(assert.AnError)

	_, err := repo.List(context.Background())
	require.Error(t, err)
}
