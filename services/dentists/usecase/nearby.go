package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/models"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
)

// SearchNearby returns verified dentists strictly within radiusKm of center,
// closest first. A nil center means the requester location is unknown and
// yields an empty list without touching the store.
func (u *DentistUC) SearchNearby(ctx context.Context, center *geo.Coordinate, radiusKm float64) ([]models.NearbyDentist, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "DentistUC.SearchNearby", func(ctx context.Context) ([]models.NearbyDentist, error) {
		if center == nil || !center.IsValid() {
			u.metrics.ObserveNearby(metrics.OutcomeNoLocation, 0)
			return []models.NearbyDentist{}, nil
		}

		radiusKm = u.radius(radiusKm)
		box := geo.NewBoundingBox(*center, radiusKm)

		candidates, err := u.dentistRepo.FindCandidatesInBox(ctx, box)
		if err != nil {
			u.metrics.ObserveNearby(metrics.OutcomeError, 0)
			return nil, fmt.Errorf("failed to find nearby dentists: %w", err)
		}

		ranked := geo.RankByDistance(candidates, *center, radiusKm, u.resultLimit())
		results := make([]models.NearbyDentist, len(ranked))
		for i, r := range ranked {
			results[i] = models.NearbyDentist{DentistSummary: r.Item, DistanceKm: r.DistanceKm}
		}

		u.metrics.ObserveNearby(metrics.OutcomeOK, len(results))
		logger.DebugCtx(ctx, "Nearby search",
			logger.Float64("radius_km", radiusKm),
			logger.Int("candidates", len(candidates)),
			logger.Int("results", len(results)))
		return results, nil
	})
}
