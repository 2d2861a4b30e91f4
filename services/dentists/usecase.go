package dentists

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/senyum/services/dentists DentistUC

// DentistUC is the directory usecase
type DentistUC interface {
	// discovery
	SearchNearby(ctx context.Context, center *geo.Coordinate, radiusKm float64) ([]models.NearbyDentist, error)
	Search(ctx context.Context, filter models.DentistSearchFilter) (*models.Page[models.DentistSummary], error)
	GetProfile(ctx context.Context, slug string) (*models.DentistProfile, error)
	GetCostPage(ctx context.Context, slug string) (*models.CostPage, error)

	// reviews
	ListReviews(ctx context.Context, slug string, page, limit int) (*models.Page[models.Review], error)
	CreateReview(ctx context.Context, actor models.Actor, slug string, req *models.CreateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error

	// profile management, owner or admin
	CreateDentist(ctx context.Context, actor models.Actor, req *models.CreateDentistRequest) (*models.Dentist, error)
	UpdateProfile(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Dentist, error)
	UpdateLocation(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateLocationRequest) (*models.Dentist, error)
	ReplaceFeatures(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReplaceFeaturesRequest) ([]models.Feature, error)
	ReplaceCosts(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReplaceCostsRequest) ([]models.CostItem, error)
	AddFAQ(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.CreateFAQRequest) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, actor models.Actor, id, faqID uuid.UUID) error
	ReorderFAQs(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReorderFAQRequest) ([]models.FAQ, error)
	UploadMedia(ctx context.Context, actor models.Actor, id uuid.UUID, upload *models.MediaUpload) (*models.Media, error)
	DeleteMedia(ctx context.Context, actor models.Actor, id, mediaID uuid.UUID) error

	// admin
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.StatusUpdateRequest) (*models.Dentist, error)
	ReassignOwner(ctx context.Context, id uuid.UUID, req *models.OwnerUpdateRequest) (*models.Dentist, error)
}
