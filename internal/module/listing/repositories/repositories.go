package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travel-service/internal/module/listing/models/entity"
	"travel-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const listingCacheTTL = 10 * time.Minute

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// listings
	InsertListing(ctx context.Context, listing entity.Listing) (entity.Listing, error)
	FindListingByID(ctx context.Context, id string) (entity.Listing, error)
	FindListings(ctx context.Context) ([]entity.Listing, error)
	UpdateListing(ctx context.Context, listing entity.Listing) (entity.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	// reviews
	InsertReview(ctx context.Context, review entity.Review) (entity.Review, error)
	FindReviewByID(ctx context.Context, id string) (entity.Review, error)
	FindReviewsByListingID(ctx context.Context, listingID string) ([]entity.Review, error)
	UpdateReview(ctx context.Context, review entity.Review) (entity.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

func listingCacheKey(id string) string {
	return fmt.Sprintf("listing:%s", id)
}

// InsertListing implements Repositories. Identity and timestamps are assigned
// here, never by the caller.
func (r *repositories) InsertListing(ctx context.Context, listing entity.Listing) (entity.Listing, error) {
	listing.ID = uuid.New()
	listing.CreatedAt = time.Now().UTC()
	listing.UpdatedAt = sql.NullTime{Time: listing.CreatedAt, Valid: true}

	query := `INSERT INTO listings (id, title, description, picture_url, price_per_night, available_from, available_to, created_at, updated_at)
		VALUES (:id, :title, :description, :picture_url, :price_per_night, :available_from, :available_to, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, listing)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert listing: %v", err))
		return entity.Listing{}, errors.InternalServerError("error insert listing")
	}

	return listing, nil
}

// FindListingByID implements Repositories. Reads go through the redis cache;
// a miss falls back to the database and repopulates the cache.
func (r *repositories) FindListingByID(ctx context.Context, id string) (entity.Listing, error) {
	if r.redisClient != nil {
		if cached, err := r.redisClient.Get(ctx, listingCacheKey(id)).Result(); err == nil {
			var listing entity.Listing
			if err := json.Unmarshal([]byte(cached), &listing); err == nil {
				return listing, nil
			}
		}
	}

	query := `SELECT * FROM listings WHERE id = $1`
	var listing entity.Listing
	err := r.db.GetContext(ctx, &listing, query, id)
	if err == sql.ErrNoRows {
		return entity.Listing{}, errors.NotFound("listing not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find listing by id: %v", err))
		return entity.Listing{}, errors.InternalServerError("error find listing by id")
	}

	if r.redisClient != nil {
		if payload, err := json.Marshal(listing); err == nil {
			r.redisClient.Set(ctx, listingCacheKey(id), payload, listingCacheTTL)
		}
	}

	return listing, nil
}

// FindListings implements Repositories.
func (r *repositories) FindListings(ctx context.Context) ([]entity.Listing, error) {
	query := `SELECT * FROM listings ORDER BY created_at DESC`
	listings := []entity.Listing{}
	err := r.db.SelectContext(ctx, &listings, query)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find listings: %v", err))
		return nil, errors.InternalServerError("error find listings")
	}
	return listings, nil
}

// UpdateListing implements Repositories. The row is locked for the duration of
// the transaction so concurrent updates to the same listing serialize.
func (r *repositories) UpdateListing(ctx context.Context, listing entity.Listing) (entity.Listing, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Listing{}, errors.InternalServerError("error starting transaction")
	}

	var existing entity.Listing
	err = tx.GetContext(ctx, &existing, `SELECT * FROM listings WHERE id = $1 FOR UPDATE`, listing.ID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Listing{}, errors.NotFound("listing not found")
	}
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error locking listing row: %v", err))
		return entity.Listing{}, errors.InternalServerError("error locking listing row")
	}

	listing.CreatedAt = existing.CreatedAt
	listing.UpdatedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE listings
		SET title = :title, description = :description, picture_url = :picture_url,
			price_per_night = :price_per_night, available_from = :available_from,
			available_to = :available_to, updated_at = :updated_at
		WHERE id = :id
	`, listing)
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update listing: %v", err))
		return entity.Listing{}, errors.InternalServerError("error update listing")
	}

	if err := tx.Commit(); err != nil {
		return entity.Listing{}, errors.InternalServerError("error committing transaction")
	}

	if r.redisClient != nil {
		r.redisClient.Del(ctx, listingCacheKey(listing.ID.String()))
	}

	return listing, nil
}

// DeleteListing implements Repositories. Bookings and reviews owned by the
// listing are removed by the ON DELETE CASCADE constraints.
func (r *repositories) DeleteListing(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete listing: %v", err))
		return errors.InternalServerError("error delete listing")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error delete listing")
	}
	if rows == 0 {
		return errors.NotFound("listing not found")
	}

	if r.redisClient != nil {
		r.redisClient.Del(ctx, listingCacheKey(id))
	}

	return nil
}

// InsertReview implements Repositories. The parent listing is checked inside
// the insert transaction so a review can never outlive a missing listing.
func (r *repositories) InsertReview(ctx context.Context, review entity.Review) (entity.Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Review{}, errors.InternalServerError("error starting transaction")
	}

	var exists int
	err = tx.GetContext(ctx, &exists, `SELECT 1 FROM listings WHERE id = $1`, review.ListingID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Review{}, errors.Conflict("listing does not exist")
	}
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error check listing exists: %v", err))
		return entity.Review{}, errors.InternalServerError("error check listing exists")
	}

	review.ID = uuid.New()
	review.CreatedAt = time.Now().UTC()
	review.UpdatedAt = sql.NullTime{Time: review.CreatedAt, Valid: true}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO reviews (id, listing_id, user_email, rating, comment, created_at, updated_at)
		VALUES (:id, :listing_id, :user_email, :rating, :comment, :created_at, :updated_at)
	`, review)
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert review: %v", err))
		return entity.Review{}, errors.InternalServerError("error insert review")
	}

	if err := tx.Commit(); err != nil {
		return entity.Review{}, errors.InternalServerError("error committing transaction")
	}

	return review, nil
}

// FindReviewByID implements Repositories.
func (r *repositories) FindReviewByID(ctx context.Context, id string) (entity.Review, error) {
	query := `SELECT * FROM reviews WHERE id = $1`
	var review entity.Review
	err := r.db.GetContext(ctx, &review, query, id)
	if err == sql.ErrNoRows {
		return entity.Review{}, errors.NotFound("review not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find review by id: %v", err))
		return entity.Review{}, errors.InternalServerError("error find review by id")
	}
	return review, nil
}

// FindReviewsByListingID implements Repositories.
func (r *repositories) FindReviewsByListingID(ctx context.Context, listingID string) ([]entity.Review, error) {
	query := `SELECT * FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC`
	reviews := []entity.Review{}
	err := r.db.SelectContext(ctx, &reviews, query, listingID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find reviews by listing id: %v", err))
		return nil, errors.InternalServerError("error find reviews by listing id")
	}
	return reviews, nil
}

// UpdateReview implements Repositories.
func (r *repositories) UpdateReview(ctx context.Context, review entity.Review) (entity.Review, error) {
	review.UpdatedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	result, err := r.db.NamedExecContext(ctx, `
		UPDATE reviews
		SET rating = :rating, comment = :comment, updated_at = :updated_at
		WHERE id = :id
	`, review)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update review: %v", err))
		return entity.Review{}, errors.InternalServerError("error update review")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return entity.Review{}, errors.InternalServerError("error update review")
	}
	if rows == 0 {
		return entity.Review{}, errors.NotFound("review not found")
	}

	return review, nil
}

// DeleteReview implements Repositories.
func (r *repositories) DeleteReview(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete review: %v", err))
		return errors.InternalServerError("error delete review")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error delete review")
	}
	if rows == 0 {
		return errors.NotFound("review not found")
	}

	return nil
}
