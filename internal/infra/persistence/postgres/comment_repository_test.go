package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_AverageRatingByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	productID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(ROUND\(AVG\(rating\)::numeric, 1\), 0\) FROM "comments"`).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.3))

	avg, err := repo.AverageRatingByProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, avg, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_AverageRatingByProduct_NoComments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	productID := uuid.New()

	// COALESCE turns the NULL average of an empty set into the unrated value 0.
	mock.ExpectQuery(`SELECT COALESCE\(ROUND\(AVG\(rating\)::numeric, 1\), 0\) FROM "comments"`).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	avg, err := repo.AverageRatingByProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByProduct_JoinsAuthorNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	productID := uuid.New()
	commentID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	columns := []string{"id", "user_id", "product_id", "text", "rating", "created_at", "first_name", "last_name"}
	mock.ExpectQuery(`SELECT comments\.id, comments\.user_id`).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(commentID, userID, productID, "Great value", 5, now, "Jan", "Kowalski"))

	comments, err := repo.ListByProduct(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Great value", comments[0].Text)
	assert.Equal(t, 5, comments[0].Rating)
	assert.Equal(t, "Jan", comments[0].AuthorFirstName)
	assert.Equal(t, "Kowalski", comments[0].AuthorLastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
