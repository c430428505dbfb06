package repository_test

import (
	"context"
	"testing"

	"kanban/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStatsRepository_Counts(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	mock.MatchExpectationsInOrder(false)
	statsRepo := repository.NewStatsRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lists"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))

	// Act
	stats, err := statsRepo.Counts(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, repository.Stats{Boards: 2, Lists: 8, Cards: 13}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
