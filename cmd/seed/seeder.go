package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
)

var specialties = []string{
	"General Dentistry", "Orthodontics", "Endodontics",
	"Periodontics", "Pediatric Dentistry", "Prosthodontics",
}

// DentistWriter is the part of the dentist repository the seeder uses
type DentistWriter interface {
	Create(ctx context.Context, dentist *models.Dentist) error
	UpdateLocation(ctx context.Context, id uuid.UUID, coord geo.Coordinate, geohash string, address *string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Seeder inserts verified demo dentists around a center
type Seeder struct {
	repo     DentistWriter
	rnd      *rand.Rand
	center   geo.Coordinate
	radiusKm float64
}

// NewSeeder creates a seeder; seed makes runs reproducible
func NewSeeder(repo DentistWriter, center geo.Coordinate, radiusKm float64, seed int64) *Seeder {
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	return &Seeder{
		repo:     repo,
		rnd:      rand.New(rand.NewSource(seed)),
		center:   center,
		radiusKm: radiusKm,
	}
}

// Run inserts n dentists and returns how many were written
func (s *Seeder) Run(ctx context.Context, n int) (int, error) {
	for i := 0; i < n; i++ {
		d := s.dentist(i)
		if err := s.repo.Create(ctx, d); err != nil {
			return i, fmt.Errorf("failed to seed dentist %d: %w", i, err)
		}

		coord := Scatter(s.center, s.radiusKm, s.rnd)
		address := d.Address
		if err := s.repo.UpdateLocation(ctx, d.ID, coord, geo.Geohash(coord, geo.DefaultGeohashPrecision), &address); err != nil {
			return i, fmt.Errorf("failed to place dentist %s: %w", d.Slug, err)
		}
		if err := s.repo.UpdateStatus(ctx, d.ID, models.DentistStatusVerified); err != nil {
			return i, fmt.Errorf("failed to verify dentist %s: %w", d.Slug, err)
		}

		logger.Debug("Seeded dentist",
			logger.String("slug", d.Slug),
			logger.Float64("latitude", coord.Latitude),
			logger.Float64("longitude", coord.Longitude))
	}
	return n, nil
}

func (s *Seeder) dentist(i int) *models.Dentist {
	first, last := randomdata.FirstName(randomdata.RandomGender), randomdata.LastName()
	name := fmt.Sprintf("drg. %s %s", first, last)
	id := uuid.New()

	d := &models.Dentist{
		Bio:             randomdata.Paragraph(),
		Phone:           randomdata.PhoneNumber(),
		Email:           randomdata.Email(),
		Address:         randomdata.Address(),
		Languages:       []string{"id", "en"},
		YearsExperience: randomdata.Number(1, 35),
		Status:          models.DentistStatusPending,
	}
	d.ID = id
	d.Name = name
	// the id suffix keeps reruns from colliding on slug
	d.Slug = fmt.Sprintf("%s-%s", utils.Slugify(name), id.String()[:8])
	d.ClinicName = fmt.Sprintf("%s Dental Clinic", randomdata.City())
	d.City = randomdata.City()
	d.Specialty = specialties[i%len(specialties)]
	d.OffersInPerson = true
	d.OffersVideo = randomdata.Boolean()
	d.Currency = models.DefaultCurrency
	return d
}

// Scatter returns a point uniformly distributed over the disc of radiusKm
// around center
func Scatter(center geo.Coordinate, radiusKm float64, rnd *rand.Rand) geo.Coordinate {
	// sqrt keeps the density uniform over the area
	dist := radiusKm * math.Sqrt(rnd.Float64())
	bearing := rnd.Float64() * 2 * math.Pi

	const earthRadiusKm = 6371.0
	lat1 := center.Latitude * math.Pi / 180
	lon1 := center.Longitude * math.Pi / 180
	ang := dist / earthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) + math.Cos(lat1)*math.Sin(ang)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(ang)*math.Cos(lat1),
		math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2),
	)

	lon := lon2 * 180 / math.Pi
	// normalize into [-180, 180)
	lon = math.Mod(lon+540, 360) - 180
	return geo.Coordinate{Latitude: lat2 * 180 / math.Pi, Longitude: lon}
}
