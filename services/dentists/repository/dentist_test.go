package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
)

var summaryCols = []string{
	"id", "name", "slug", "clinic_name", "specialty", "city", "latitude", "longitude",
	"rating", "review_count", "image_url", "is_verified", "offers_in_person", "offers_video",
	"price_from", "currency",
}

func setupDentistRepoTest(t *testing.T) (*DentistRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	repo := &DentistRepo{db: sqlxDB, cfg: &models.Config{}}

	return repo, mock, func() { sqlxDB.Close() }
}

func summaryRow(rows *sqlmock.Rows, id uuid.UUID, name string, lat, lon float64) *sqlmock.Rows {
	return rows.AddRow(id.String(), name, "drg-"+name, "Klinik", "orthodontics", "Jakarta", lat, lon,
		4.5, 10, nil, true, true, false, nil, "IDR")
}

func TestFindCandidatesInBox(t *testing.T) {
	first := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")

	testCases := []struct {
		name       string
		box        geo.BoundingBox
		mockSetup  func(mock sqlmock.Sqlmock, box geo.BoundingBox)
		assertFunc func(t *testing.T, got []models.DentistSummary, err error)
	}{
		{
			name: "Success",
			box:  geo.NewBoundingBox(geo.Coordinate{Latitude: 37.7749, Longitude: -122.4194}, 20),
			mockSetup: func(mock sqlmock.Sqlmock, box geo.BoundingBox) {
				rows := summaryRow(sqlmock.NewRows(summaryCols), first, "oakland", 37.8044, -122.2712)
				mock.ExpectQuery(regexp.QuoteMeta("longitude BETWEEN $3 AND $4")).
					WithArgs(box.MinLat, box.MaxLat, box.MinLon, box.MaxLon).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, got []models.DentistSummary, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, first, got[0].ID)
				assert.Equal(t, 37.8044, *got[0].Latitude)
				assert.Nil(t, got[0].ImageURL)
			},
		},
		{
			name: "Antimeridian Uses Two Ranges",
			box:  geo.NewBoundingBox(geo.Coordinate{Latitude: -17.7, Longitude: 179.9}, 50),
			mockSetup: func(mock sqlmock.Sqlmock, box geo.BoundingBox) {
				mock.ExpectQuery(regexp.QuoteMeta("(longitude >= $3 OR longitude <= $4)")).
					WithArgs(box.MinLat, box.MaxLat, box.MinLon, box.MaxLon).
					WillReturnRows(sqlmock.NewRows(summaryCols))
			},
			assertFunc: func(t *testing.T, got []models.DentistSummary, err error) {
				require.NoError(t, err)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			name: "Database Error",
			box:  geo.NewBoundingBox(geo.Coordinate{Latitude: 1, Longitude: 1}, 5),
			mockSetup: func(mock sqlmock.Sqlmock, box geo.BoundingBox) {
				mock.ExpectQuery("FROM dentists").WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, got []models.DentistSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.Contains(t, err.Error(), "failed to query dentists in bounding box")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupDentistRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock, tc.box)

			got, err := repo.FindCandidatesInBox(context.Background(), tc.box)

			tc.assertFunc(t, got, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSearch(t *testing.T) {
	repo, mock, cleanup := setupDentistRepoTest(t)
	defer cleanup()

	filter := models.DentistSearchFilter{
		Query:        "smile",
		City:         "Bandung",
		Area:         "qqgu",
		MinRating:    4,
		Consultation: models.ConsultationVideo,
		Page:         2,
		Limit:        10,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM dentists WHERE status = 'verified' AND (name ILIKE $1 OR clinic_name ILIKE $1) AND city ILIKE $2 AND geohash LIKE $3 AND rating >= $4 AND offers_video = TRUE")).
		WithArgs("%smile%", "Bandung", "qqgu%", 4.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY rating DESC, review_count DESC, name ASC LIMIT $5 OFFSET $6")).
		WithArgs("%smile%", "Bandung", "qqgu%", 4.0, 10, 10).
		WillReturnRows(summaryRow(sqlmock.NewRows(summaryCols), uuid.New(), "smile", -6.9, 107.6))

	items, total, err := repo.Search(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 11, total)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlug_NotFound(t *testing.T) {
	repo, mock, cleanup := setupDentistRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM dentists WHERE slug = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(summaryCols))

	got, err := repo.GetBySlug(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupDentistRepoTest(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta("is_verified = ($2 = 'verified')")).
			WithArgs(id, models.DentistStatusVerified).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), id, models.DentistStatusVerified))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupDentistRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE dentists").
			WithArgs(id, models.DentistStatusSuspended).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), id, models.DentistStatusSuspended)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestReassignOwner(t *testing.T) {
	dentistID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440010")
	oldOwner := uuid.MustParse("550e8400-e29b-41d4-a716-446655440011")
	newOwner := uuid.MustParse("550e8400-e29b-41d4-a716-446655440012")

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "Success Demotes Previous Owner",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT user_id FROM dentists").WithArgs(dentistID).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(oldOwner.String()))
				mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM users").WithArgs(newOwner).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM dentists").WithArgs(newOwner, dentistID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("UPDATE dentists SET user_id").WithArgs(dentistID, newOwner).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE users SET role = 'dentist'").WithArgs(newOwner).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE users SET role = 'patient'").WithArgs(oldOwner).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Unknown User",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT user_id FROM dentists").WithArgs(dentistID).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(nil))
				mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM users").WithArgs(newOwner).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "User Owns Another Profile",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT user_id FROM dentists").WithArgs(dentistID).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(nil))
				mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM users").WithArgs(newOwner).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM dentists").WithArgs(newOwner, dentistID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: models.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupDentistRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.ReassignOwner(context.Background(), dentistID, newOwner)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReorderFAQs(t *testing.T) {
	dentistID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupDentistRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("WITH ORDINALITY").
			WithArgs(dentistID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		assert.NoError(t, repo.ReorderFAQs(context.Background(), dentistID, ids))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Foreign Id Rolls Back", func(t *testing.T) {
		repo, mock, cleanup := setupDentistRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("WITH ORDINALITY").
			WithArgs(dentistID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		err := repo.ReorderFAQs(context.Background(), dentistID, ids)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReplaceFeatures(t *testing.T) {
	repo, mock, cleanup := setupDentistRepoTest(t)
	defer cleanup()

	dentistID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dentist_features").WithArgs(dentistID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO dentist_features").
		WithArgs(sqlmock.AnyArg(), dentistID, "Braces", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO dentist_features").
		WithArgs(sqlmock.AnyArg(), dentistID, "Whitening", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	features, err := repo.ReplaceFeatures(context.Background(), dentistID, []string{"Braces", "Whitening"})

	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "Whitening", features[1].Name)
	assert.Equal(t, 1, features[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceCosts(t *testing.T) {
	repo, mock, cleanup := setupDentistRepoTest(t)
	defer cleanup()

	dentistID := uuid.New()
	item := models.CostItem{ID: uuid.New(), Name: "Scaling", PriceMin: 150000, PriceMax: 300000, Currency: "IDR"}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dentist_costs").WithArgs(dentistID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO dentist_costs").
		WithArgs(item.ID, dentistID, "Scaling", "", 150000.0, 300000.0, "IDR").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET price_from = (SELECT MIN(price_min)")).WithArgs(dentistID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.ReplaceCosts(context.Background(), dentistID, []models.CostItem{item}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview(t *testing.T) {
	review := &models.Review{ID: uuid.New(), DentistID: uuid.New(), PatientID: uuid.New(), Rating: 5, Comment: "great"}

	t.Run("Success Refreshes Aggregate", func(t *testing.T) {
		repo, mock, cleanup := setupDentistRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO dentist_reviews").
			WithArgs(review.ID, review.DentistID, review.PatientID, 5, "great").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(review.CreatedAt))
		mock.ExpectExec(regexp.QuoteMeta("ROUND(AVG(rating)::numeric, 2)")).WithArgs(review.DentistID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.CreateReview(context.Background(), review))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Review", func(t *testing.T) {
		repo, mock, cleanup := setupDentistRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO dentist_reviews").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateReview(context.Background(), review)
		assert.ErrorIs(t, err, models.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteReview(t *testing.T) {
	repo, mock, cleanup := setupDentistRepoTest(t)
	defer cleanup()

	reviewID := uuid.New()
	dentistID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM dentist_reviews").WithArgs(reviewID).
		WillReturnRows(sqlmock.NewRows([]string{"dentist_id"}).AddRow(dentistID.String()))
	mock.ExpectExec("UPDATE dentists SET").WithArgs(dentistID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.DeleteReview(context.Background(), reviewID)

	require.NoError(t, err)
	assert.Equal(t, dentistID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
