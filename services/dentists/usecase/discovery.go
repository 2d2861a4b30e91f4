package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
	"github.com/piresc/senyum/internal/utils"
)

const maxReviewLength = 2000

// Search lists verified dentists matching filter
func (u *DentistUC) Search(ctx context.Context, filter models.DentistSearchFilter) (*models.Page[models.DentistSummary], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	filter.Query = utils.SanitizeString(filter.Query)
	filter.Area = strings.ToLower(strings.TrimSpace(filter.Area))

	if filter.Area != "" && !geo.ValidGeohash(filter.Area) {
		return nil, fmt.Errorf("area must be a geohash prefix: %w", models.ErrInvalidInput)
	}
	if filter.MinRating < 0 || filter.MinRating > 5 {
		return nil, fmt.Errorf("min_rating must be between 0 and 5: %w", models.ErrInvalidInput)
	}
	switch filter.Consultation {
	case "", models.ConsultationInPerson, models.ConsultationVideo:
	default:
		return nil, fmt.Errorf("unknown consultation type %q: %w", filter.Consultation, models.ErrInvalidInput)
	}

	items, total, err := u.dentistRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search dentists: %w", err)
	}
	return &models.Page[models.DentistSummary]{Items: items, Page: filter.Page, Limit: filter.Limit, Total: total}, nil
}

// publicDentist loads a dentist that may be shown to anonymous visitors
func (u *DentistUC) publicDentist(ctx context.Context, slug string) (*models.Dentist, error) {
	dentist, err := u.dentistRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if dentist.Status != models.DentistStatusVerified {
		return nil, fmt.Errorf("dentist: %w", models.ErrNotFound)
	}
	return dentist, nil
}

// GetProfile returns the public profile page, read through the Redis cache
func (u *DentistUC) GetProfile(ctx context.Context, slug string) (*models.DentistProfile, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "DentistUC.GetProfile", func(ctx context.Context) (*models.DentistProfile, error) {
		cached, err := u.cache.Get(ctx, slug)
		if err == nil {
			u.metrics.ObserveCache(profileCacheName, true)
			return cached, nil
		}
		u.metrics.ObserveCache(profileCacheName, false)
		if !errors.Is(err, database.ErrCacheMiss) {
			logger.WarnCtx(ctx, "Profile cache unavailable", logger.String("slug", slug), logger.Err(err))
		}

		dentist, err := u.publicDentist(ctx, slug)
		if err != nil {
			return nil, err
		}

		features, err := u.dentistRepo.ListFeatures(ctx, dentist.ID)
		if err != nil {
			return nil, err
		}
		faqs, err := u.dentistRepo.ListFAQs(ctx, dentist.ID)
		if err != nil {
			return nil, err
		}
		media, err := u.dentistRepo.ListMedia(ctx, dentist.ID)
		if err != nil {
			return nil, err
		}

		profile := &models.DentistProfile{Dentist: dentist, Features: features, FAQs: faqs, Media: media}
		if err := u.cache.Set(ctx, profile); err != nil {
			logger.WarnCtx(ctx, "Failed to cache profile", logger.String("slug", slug), logger.Err(err))
		}
		return profile, nil
	})
}

// GetCostPage returns the price list of a verified dentist
func (u *DentistUC) GetCostPage(ctx context.Context, slug string) (*models.CostPage, error) {
	dentist, err := u.publicDentist(ctx, slug)
	if err != nil {
		return nil, err
	}
	items, err := u.dentistRepo.ListCosts(ctx, dentist.ID)
	if err != nil {
		return nil, err
	}
	return &models.CostPage{Dentist: dentist.DentistSummary, Items: items}, nil
}

// ListReviews pages through the reviews of a verified dentist
func (u *DentistUC) ListReviews(ctx context.Context, slug string, page, limit int) (*models.Page[models.Review], error) {
	dentist, err := u.publicDentist(ctx, slug)
	if err != nil {
		return nil, err
	}
	page, limit = normalizePage(page, limit)
	reviews, total, err := u.dentistRepo.ListReviews(ctx, dentist.ID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Review]{Items: reviews, Page: page, Limit: limit, Total: total}, nil
}

// CreateReview lets a patient rate a verified dentist once
func (u *DentistUC) CreateReview(ctx context.Context, actor models.Actor, slug string, req *models.CreateReviewRequest) (*models.Review, error) {
	if actor.Role != models.RolePatient {
		return nil, fmt.Errorf("only patients can review: %w", models.ErrForbidden)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", models.ErrInvalidInput)
	}

	dentist, err := u.publicDentist(ctx, slug)
	if err != nil {
		return nil, err
	}
	if dentist.IsOwnedBy(actor.UserID) {
		return nil, fmt.Errorf("cannot review your own profile: %w", models.ErrForbidden)
	}

	review := &models.Review{
		ID:        uuid.New(),
		DentistID: dentist.ID,
		PatientID: actor.UserID,
		Rating:    req.Rating,
		Comment:   utils.Truncate(strings.TrimSpace(req.Comment), maxReviewLength),
	}
	if err := u.dentistRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	u.changed(ctx, dentist, "review")
	return review, nil
}

// DeleteReview removes a review as a moderation action
func (u *DentistUC) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	dentistID, err := u.dentistRepo.DeleteReview(ctx, reviewID)
	if err != nil {
		return err
	}
	dentist, err := u.dentistRepo.GetByID(ctx, dentistID)
	if err != nil {
		return err
	}
	u.changed(ctx, dentist, "review")
	return nil
}
