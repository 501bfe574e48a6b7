package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"travel-service/internal/module/listing/models/entity"
	"travel-service/internal/module/listing/repositories"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

func setup(t *testing.T) (repositories.Repositories, sqlxmock.Sqlmock) {
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("error creating sqlx mock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return repositories.New(db, log_internal.Setup(), nil), mock
}

func listingColumns() []string {
	return []string{"id", "title", "description", "picture_url", "price_per_night", "available_from", "available_to", "created_at", "updated_at"}
}

func TestInsertListing(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectExec("INSERT INTO listings").
		WillReturnResult(sqlxmock.NewResult(1, 1))

	created, err := repo.InsertListing(context.Background(), entity.Listing{
		Title:         "Test Beach House",
		PricePerNight: 150.00,
		AvailableFrom: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.UpdatedAt.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindListingByID(t *testing.T) {
	listingID := uuid.New()

	t.Run("returns the row", func(t *testing.T) {
		repo, mock := setup(t)

		rows := sqlxmock.NewRows(listingColumns()).
			AddRow(listingID.String(), "Test Beach House", "A house on the beach", "",
				150.00,
				time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				time.Now().UTC(), time.Now().UTC())
		mock.ExpectQuery("SELECT (.+) FROM listings").
			WithArgs(listingID.String()).
			WillReturnRows(rows)

		listing, err := repo.FindListingByID(context.Background(), listingID.String())

		assert.NoError(t, err)
		assert.Equal(t, listingID, listing.ID)
		assert.Equal(t, "Test Beach House", listing.Title)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectQuery("SELECT (.+) FROM listings").
			WithArgs(listingID.String()).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindListingByID(context.Background(), listingID.String())

		assert.True(t, errors.IsNotFound(err))
	})
}

func TestUpdateListing(t *testing.T) {
	listingID := uuid.New()
	listing := entity.Listing{
		ID:            listingID,
		Title:         "Renamed Beach House",
		PricePerNight: 175.00,
		AvailableFrom: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("locks the row and commits", func(t *testing.T) {
		repo, mock := setup(t)

		rows := sqlxmock.NewRows(listingColumns()).
			AddRow(listingID.String(), "Test Beach House", "", "",
				150.00, listing.AvailableFrom, listing.AvailableTo,
				time.Now().UTC(), time.Now().UTC())

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM listings").
			WithArgs(listingID.String()).
			WillReturnRows(rows)
		mock.ExpectExec("UPDATE listings").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		updated, err := repo.UpdateListing(context.Background(), listing)

		assert.NoError(t, err)
		assert.Equal(t, "Renamed Beach House", updated.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing listing rolls back with not found", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM listings").
			WithArgs(listingID.String()).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.UpdateListing(context.Background(), listing)

		assert.True(t, errors.IsNotFound(err))
	})
}

func TestDeleteListing(t *testing.T) {
	listingID := uuid.NewString()

	t.Run("deletes the row", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectExec("DELETE FROM listings").
			WithArgs(listingID).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteListing(context.Background(), listingID))
	})

	t.Run("zero affected rows is not found", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectExec("DELETE FROM listings").
			WithArgs(listingID).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.DeleteListing(context.Background(), listingID)

		assert.True(t, errors.IsNotFound(err))
	})
}

func TestInsertReview(t *testing.T) {
	listingID := uuid.New()
	review := entity.Review{
		ListingID: listingID,
		UserEmail: "test@example.com",
		Rating:    5,
		Comment:   "great stay",
	}

	t.Run("assigns identity and commits", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM listings").
			WillReturnRows(sqlxmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectExec("INSERT INTO reviews").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		created, err := repo.InsertReview(context.Background(), review)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing listing rolls back with conflict", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM listings").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.InsertReview(context.Background(), review)

		assert.True(t, errors.IsConflict(err))
	})
}

func TestUpdateReview(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectExec("UPDATE reviews").
		WillReturnResult(sqlxmock.NewResult(0, 0))

	_, err := repo.UpdateReview(context.Background(), entity.Review{
		ID:     uuid.New(),
		Rating: 3,
	})

	assert.True(t, errors.IsNotFound(err))
}
