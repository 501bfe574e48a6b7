package usecases

import (
	"context"
	"time"

	"travel-service/internal/module/listing/models/entity"
	"travel-service/internal/module/listing/models/request"
	"travel-service/internal/module/listing/models/response"
	"travel-service/internal/module/listing/repositories"
	"travel-service/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const dateLayout = "2006-01-02"

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	CreateListing(ctx context.Context, payload *request.CreateListing) (response.Listing, error)
	GetListing(ctx context.Context, id string) (response.Listing, error)
	ListListings(ctx context.Context) ([]response.Listing, error)
	UpdateListing(ctx context.Context, id string, payload *request.UpdateListing) (response.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	CreateReview(ctx context.Context, listingID string, payload *request.CreateReview) (response.Review, error)
	ListReviews(ctx context.Context, listingID string) ([]response.Review, error)
	UpdateReview(ctx context.Context, id string, payload *request.UpdateReview) (response.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreateListing(ctx context.Context, payload *request.CreateListing) (response.Listing, error) {
	from, err := time.Parse(dateLayout, payload.AvailableFrom)
	if err != nil {
		return response.Listing{}, errors.BadRequest("invalid available_from date")
	}
	to, err := time.Parse(dateLayout, payload.AvailableTo)
	if err != nil {
		return response.Listing{}, errors.BadRequest("invalid available_to date")
	}
	if from.After(to) {
		return response.Listing{}, errors.UnprocessableEntity("available_from must not be after available_to")
	}

	listing := entity.Listing{
		Title:         payload.Title,
		Description:   payload.Description,
		PictureURL:    payload.PictureURL,
		PricePerNight: payload.PricePerNight,
		AvailableFrom: from,
		AvailableTo:   to,
	}

	created, err := u.repo.InsertListing(ctx, listing)
	if err != nil {
		return response.Listing{}, err
	}

	return toListingResponse(created), nil
}

func (u *usecase) GetListing(ctx context.Context, id string) (response.Listing, error) {
	listing, err := u.repo.FindListingByID(ctx, id)
	if err != nil {
		return response.Listing{}, err
	}
	return toListingResponse(listing), nil
}

func (u *usecase) ListListings(ctx context.Context) ([]response.Listing, error) {
	listings, err := u.repo.FindListings(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Listing, 0, len(listings))
	for _, listing := range listings {
		resp = append(resp, toListingResponse(listing))
	}
	return resp, nil
}

func (u *usecase) UpdateListing(ctx context.Context, id string, payload *request.UpdateListing) (response.Listing, error) {
	listing, err := u.repo.FindListingByID(ctx, id)
	if err != nil {
		return response.Listing{}, err
	}

	if payload.Title != nil {
		listing.Title = *payload.Title
	}
	if payload.Description != nil {
		listing.Description = *payload.Description
	}
	if payload.PictureURL != nil {
		listing.PictureURL = *payload.PictureURL
	}
	if payload.PricePerNight != nil {
		listing.PricePerNight = *payload.PricePerNight
	}
	if payload.AvailableFrom != nil {
		from, err := time.Parse(dateLayout, *payload.AvailableFrom)
		if err != nil {
			return response.Listing{}, errors.BadRequest("invalid available_from date")
		}
		listing.AvailableFrom = from
	}
	if payload.AvailableTo != nil {
		to, err := time.Parse(dateLayout, *payload.AvailableTo)
		if err != nil {
			return response.Listing{}, errors.BadRequest("invalid available_to date")
		}
		listing.AvailableTo = to
	}

	if listing.AvailableFrom.After(listing.AvailableTo) {
		return response.Listing{}, errors.UnprocessableEntity("available_from must not be after available_to")
	}

	updated, err := u.repo.UpdateListing(ctx, listing)
	if err != nil {
		return response.Listing{}, err
	}

	return toListingResponse(updated), nil
}

func (u *usecase) DeleteListing(ctx context.Context, id string) error {
	return u.repo.DeleteListing(ctx, id)
}

func (u *usecase) CreateReview(ctx context.Context, listingID string, payload *request.CreateReview) (response.Review, error) {
	listing, err := u.repo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.IsNotFound(err) {
			return response.Review{}, errors.Conflict("listing does not exist")
		}
		return response.Review{}, err
	}

	rating := payload.Rating
	if rating == 0 {
		rating = 5
	}

	review := entity.Review{
		ListingID: listing.ID,
		UserEmail: payload.UserEmail,
		Rating:    rating,
		Comment:   payload.Comment,
	}

	created, err := u.repo.InsertReview(ctx, review)
	if err != nil {
		return response.Review{}, err
	}

	return toReviewResponse(created), nil
}

func (u *usecase) ListReviews(ctx context.Context, listingID string) ([]response.Review, error) {
	if _, err := u.repo.FindListingByID(ctx, listingID); err != nil {
		return nil, err
	}

	reviews, err := u.repo.FindReviewsByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Review, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toReviewResponse(review))
	}
	return resp, nil
}

func (u *usecase) UpdateReview(ctx context.Context, id string, payload *request.UpdateReview) (response.Review, error) {
	review, err := u.repo.FindReviewByID(ctx, id)
	if err != nil {
		return response.Review{}, err
	}

	if payload.Rating != nil {
		review.Rating = *payload.Rating
	}
	if payload.Comment != nil {
		review.Comment = *payload.Comment
	}

	if review.Rating < 1 || review.Rating > 5 {
		return response.Review{}, errors.UnprocessableEntity("rating must be between 1 and 5")
	}

	updated, err := u.repo.UpdateReview(ctx, review)
	if err != nil {
		return response.Review{}, err
	}

	return toReviewResponse(updated), nil
}

func (u *usecase) DeleteReview(ctx context.Context, id string) error {
	return u.repo.DeleteReview(ctx, id)
}

func toListingResponse(listing entity.Listing) response.Listing {
	resp := response.Listing{
		ID:            listing.ID.String(),
		Title:         listing.Title,
		Description:   listing.Description,
		PictureURL:    listing.PictureURL,
		PricePerNight: listing.PricePerNight,
		AvailableFrom: listing.AvailableFrom.Format(dateLayout),
		AvailableTo:   listing.AvailableTo.Format(dateLayout),
		CreatedAt:     listing.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if listing.UpdatedAt.Valid {
		resp.UpdatedAt = listing.UpdatedAt.Time.Format("2006-01-02 15:04:05")
	}
	return resp
}

func toReviewResponse(review entity.Review) response.Review {
	resp := response.Review{
		ID:        review.ID.String(),
		ListingID: review.ListingID.String(),
		UserEmail: review.UserEmail,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if review.UpdatedAt.Valid {
		resp.UpdatedAt = review.UpdatedAt.Time.Format("2006-01-02 15:04:05")
	}
	return resp
}
