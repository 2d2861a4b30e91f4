package usecase

import (
	"context"
	"time"

	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/dentists"
)

const (
	defaultRadiusKm    = 20
	maxRadiusKm        = 100
	defaultResultLimit = 50
	defaultPageLimit   = 20
	maxPageLimit       = 50
	defaultCurrency    = models.DefaultCurrency
	profileCacheName   = "dentist_profile"
)

type DentistUC struct {
	dentistRepo dentists.DentistRepo
	cache       dentists.ProfileCache
	DentistGW   dentists.DentistGW
	cfg         *models.Config
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewDentistUC creates a new directory usecase instance
func NewDentistUC(
	dentistRepo dentists.DentistRepo,
	cache dentists.ProfileCache,
	dentistGW dentists.DentistGW,
	cfg *models.Config,
	m *metrics.Metrics,
) *DentistUC {
	return &DentistUC{
		dentistRepo: dentistRepo,
		cache:       cache,
		DentistGW:   dentistGW,
		cfg:         cfg,
		metrics:     m,
		now:         time.Now,
	}
}

func (u *DentistUC) radius(requested float64) float64 {
	def, max := u.cfg.Search.DefaultRadiusKm, u.cfg.Search.MaxRadiusKm
	if def <= 0 {
		def = defaultRadiusKm
	}
	if max <= 0 {
		max = maxRadiusKm
	}
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}

// resultLimit never exceeds the 50 result cap
func (u *DentistUC) resultLimit() int {
	if l := u.cfg.Search.ResultLimit; l > 0 && l < defaultResultLimit {
		return l
	}
	return defaultResultLimit
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// changed drops the cached profile and announces the change. Both are best
// effort: the write already happened.
func (u *DentistUC) changed(ctx context.Context, dentist *models.Dentist, change string) {
	if err := u.cache.Invalidate(ctx, dentist.Slug); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate profile cache",
			logger.String("slug", dentist.Slug),
			logger.Err(err))
	}

	event := &models.DentistUpdatedEvent{
		DentistID:  dentist.ID,
		Slug:       dentist.Slug,
		Change:     change,
		OccurredAt: u.now(),
	}
	if err := u.DentistGW.PublishDentistUpdated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish dentist update",
			logger.String("dentist_id", dentist.ID.String()),
			logger.String("change", change),
			logger.Err(err))
	}
}
