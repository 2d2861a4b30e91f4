package main

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/dentists/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatter_StaysInsideRadius(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	centers := []geo.Coordinate{
		{Latitude: -6.2088, Longitude: 106.8456},
		{Latitude: 37.7749, Longitude: -122.4194},
		{Latitude: 10, Longitude: 179.99},
	}
	for _, center := range centers {
		for i := 0; i < 500; i++ {
			p := Scatter(center, 15, rnd)
			require.True(t, p.IsValid(), "point %v", p)
			assert.LessOrEqual(t, geo.HaversineKm(center, p), 15.0+1e-6)
		}
	}
}

func TestSeeder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDentistRepo(ctrl)
	center := geo.Coordinate{Latitude: -6.2088, Longitude: 106.8456}

	slugs := map[string]bool{}
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, d *models.Dentist) error {
			assert.NotEqual(t, uuid.Nil, d.ID)
			assert.Equal(t, models.DentistStatusPending, d.Status)
			assert.True(t, d.OffersInPerson)
			assert.False(t, slugs[d.Slug], "duplicate slug %s", d.Slug)
			slugs[d.Slug] = true
			return nil
		})
	repo.EXPECT().UpdateLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, c geo.Coordinate, hash string, _ *string) error {
			assert.Less(t, geo.HaversineKm(center, c), 5.0+1e-6)
			assert.Len(t, hash, int(geo.DefaultGeohashPrecision))
			return nil
		})
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.DentistStatusVerified).Times(3).Return(nil)

	n, err := NewSeeder(repo, center, 5, 42).Run(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSeeder_RunStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDentistRepo(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdateLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	n, err := NewSeeder(repo, geo.Coordinate{}, 5, 1).Run(context.Background(), 3)
	assert.ErrorContains(t, err, "failed to seed dentist 1")
	assert.Equal(t, 1, n)
}
