package dentists

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/senyum/services/dentists DentistRepo,ProfileCache

// DentistRepo defines the directory data access operations
type DentistRepo interface {
	// nearby pre-filter: verified dentists inside box, unranked
	FindCandidatesInBox(ctx context.Context, box geo.BoundingBox) ([]models.DentistSummary, error)
	Search(ctx context.Context, filter models.DentistSearchFilter) ([]models.DentistSummary, int, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Dentist, error)
	GetBySlug(ctx context.Context, slug string) (*models.Dentist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Dentist, error)
	ListSlugsWithPrefix(ctx context.Context, prefix string) ([]string, error)
	Create(ctx context.Context, dentist *models.Dentist) error
	UpdateProfile(ctx context.Context, dentist *models.Dentist) error
	UpdateLocation(ctx context.Context, id uuid.UUID, coord geo.Coordinate, geohash string, address *string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateImageURL(ctx context.Context, id uuid.UUID, url string) error
	ReassignOwner(ctx context.Context, id, userID uuid.UUID) error

	ListFeatures(ctx context.Context, dentistID uuid.UUID) ([]models.Feature, error)
	ReplaceFeatures(ctx context.Context, dentistID uuid.UUID, names []string) ([]models.Feature, error)

	ListFAQs(ctx context.Context, dentistID uuid.UUID) ([]models.FAQ, error)
	CreateFAQ(ctx context.Context, faq *models.FAQ) error
	DeleteFAQ(ctx context.Context, dentistID, faqID uuid.UUID) error
	ReorderFAQs(ctx context.Context, dentistID uuid.UUID, ids []uuid.UUID) error

	ListCosts(ctx context.Context, dentistID uuid.UUID) ([]models.CostItem, error)
	ReplaceCosts(ctx context.Context, dentistID uuid.UUID, items []models.CostItem) error

	ListMedia(ctx context.Context, dentistID uuid.UUID) ([]models.Media, error)
	GetMedia(ctx context.Context, dentistID, mediaID uuid.UUID) (*models.Media, error)
	CreateMedia(ctx context.Context, media *models.Media) error
	DeleteMedia(ctx context.Context, dentistID, mediaID uuid.UUID) error

	ListReviews(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]models.Review, int, error)
	CreateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, error)
}

// ProfileCache caches rendered profile pages by slug
type ProfileCache interface {
	Get(ctx context.Context, slug string) (*models.DentistProfile, error)
	Set(ctx context.Context, profile *models.DentistProfile) error
	Invalidate(ctx context.Context, slugs ...string) error
}
