package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
)

const (
	maxFeatures  = 30
	maxCostItems = 100
	maxFAQText   = 2000
)

// authorize loads the dentist and checks that actor owns it or is an admin
func (u *DentistUC) authorize(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Dentist, error) {
	dentist, err := u.dentistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !dentist.IsOwnedBy(actor.UserID) {
		return nil, fmt.Errorf("not the owner of this profile: %w", models.ErrForbidden)
	}
	return dentist, nil
}

func validateContact(email, phone string) error {
	if email != "" && !utils.IsValidEmail(email) {
		return fmt.Errorf("invalid email: %w", models.ErrInvalidInput)
	}
	if phone != "" && !utils.IsValidPhoneNumber(phone) {
		return fmt.Errorf("invalid phone number: %w", models.ErrInvalidInput)
	}
	return nil
}

// CreateDentist registers the caller's own profile in pending status. An
// admin may create a profile without an owner.
func (u *DentistUC) CreateDentist(ctx context.Context, actor models.Actor, req *models.CreateDentistRequest) (*models.Dentist, error) {
	if actor.Role != models.RoleDentist && !actor.IsAdmin() {
		return nil, fmt.Errorf("only dentists can create a profile: %w", models.ErrForbidden)
	}

	name := utils.SanitizeString(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", models.ErrInvalidInput)
	}
	if req.YearsExperience < 0 {
		return nil, fmt.Errorf("years_experience must not be negative: %w", models.ErrInvalidInput)
	}
	phone := utils.NormalizePhone(req.Phone)
	if err := validateContact(req.Email, phone); err != nil {
		return nil, err
	}

	var owner *uuid.UUID
	if actor.Role == models.RoleDentist {
		_, err := u.dentistRepo.GetByUserID(ctx, actor.UserID)
		if err == nil {
			return nil, fmt.Errorf("user already owns a dentist profile: %w", models.ErrConflict)
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		userID := actor.UserID
		owner = &userID
	}

	slug, err := u.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	offersInPerson := req.OffersInPerson
	if !req.OffersInPerson && !req.OffersVideo {
		offersInPerson = true
	}

	dentist := &models.Dentist{
		DentistSummary: models.DentistSummary{
			ID:             uuid.New(),
			Name:           name,
			Slug:           slug,
			ClinicName:     utils.SanitizeString(req.ClinicName),
			Specialty:      utils.SanitizeString(req.Specialty),
			City:           utils.SanitizeString(req.City),
			OffersInPerson: offersInPerson,
			OffersVideo:    req.OffersVideo,
			Currency:       currency,
		},
		UserID:          owner,
		Bio:             strings.TrimSpace(req.Bio),
		Phone:           phone,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Address:         utils.SanitizeString(req.Address),
		Languages:       cleanList(req.Languages, 0),
		YearsExperience: req.YearsExperience,
		Status:          models.DentistStatusPending,
	}

	if err := u.dentistRepo.Create(ctx, dentist); err != nil {
		return nil, err
	}
	return dentist, nil
}

// uniqueSlug derives a slug from name, suffixing -2, -3, ... when taken
func (u *DentistUC) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "dentist"
	}

	taken, err := u.dentistRepo.ListSlugsWithPrefix(ctx, base)
	if err != nil {
		return "", err
	}
	used := make(map[string]bool, len(taken))
	for _, s := range taken {
		used[s] = true
	}
	if !used[base] {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !used[candidate] {
			return candidate, nil
		}
	}
}

// UpdateProfile applies the non-nil fields of req
func (u *DentistUC) UpdateProfile(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Dentist, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		dentist.Name = utils.SanitizeString(*req.Name)
		if dentist.Name == "" {
			return nil, fmt.Errorf("name is required: %w", models.ErrInvalidInput)
		}
	}
	if req.ClinicName != nil {
		dentist.ClinicName = utils.SanitizeString(*req.ClinicName)
	}
	if req.Specialty != nil {
		dentist.Specialty = utils.SanitizeString(*req.Specialty)
	}
	if req.Bio != nil {
		dentist.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.Phone != nil {
		dentist.Phone = utils.NormalizePhone(*req.Phone)
	}
	if req.Email != nil {
		dentist.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.City != nil {
		dentist.City = utils.SanitizeString(*req.City)
	}
	if req.Languages != nil {
		dentist.Languages = cleanList(req.Languages, 0)
	}
	if req.YearsExperience != nil {
		if *req.YearsExperience < 0 {
			return nil, fmt.Errorf("years_experience must not be negative: %w", models.ErrInvalidInput)
		}
		dentist.YearsExperience = *req.YearsExperience
	}
	if req.OffersInPerson != nil {
		dentist.OffersInPerson = *req.OffersInPerson
	}
	if req.OffersVideo != nil {
		dentist.OffersVideo = *req.OffersVideo
	}
	if req.Currency != nil {
		dentist.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if !dentist.OffersInPerson && !dentist.OffersVideo {
		return nil, fmt.Errorf("at least one consultation type must be offered: %w", models.ErrInvalidInput)
	}
	if err := validateContact(dentist.Email, dentist.Phone); err != nil {
		return nil, err
	}

	if err := u.dentistRepo.UpdateProfile(ctx, dentist); err != nil {
		return nil, err
	}
	u.changed(ctx, dentist, "profile")
	return dentist, nil
}

// UpdateLocation stores explicit coordinates, or geocodes the address when
// no coordinates are given
func (u *DentistUC) UpdateLocation(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateLocationRequest) (*models.Dentist, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	address := utils.SanitizeString(req.Address)
	var coord geo.Coordinate
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		coord = geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	case req.Latitude != nil || req.Longitude != nil:
		return nil, fmt.Errorf("latitude and longitude must be given together: %w", models.ErrInvalidInput)
	case address != "":
		resolved, err := u.DentistGW.Geocode(ctx, address)
		if err != nil {
			return nil, err
		}
		coord = *resolved
	default:
		return nil, fmt.Errorf("coordinates or address required: %w", models.ErrInvalidInput)
	}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput)
	}

	hash := geo.Geohash(coord, geo.DefaultGeohashPrecision)
	var addr *string
	if address != "" {
		addr = &address
		dentist.Address = address
	}
	if err := u.dentistRepo.UpdateLocation(ctx, id, coord, hash, addr); err != nil {
		return nil, err
	}

	dentist.Latitude = &coord.Latitude
	dentist.Longitude = &coord.Longitude
	dentist.Geohash = &hash
	u.changed(ctx, dentist, "location")
	return dentist, nil
}

// cleanList trims entries, drops blanks and case-insensitive duplicates and
// keeps the first occurrence order. max <= 0 means unlimited.
func cleanList(in []string, max int) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = utils.SanitizeString(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// ReplaceFeatures swaps the whole feature list
func (u *DentistUC) ReplaceFeatures(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReplaceFeaturesRequest) ([]models.Feature, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	names := cleanList(req.Features, 0)
	if len(names) > maxFeatures {
		return nil, fmt.Errorf("at most %d features allowed: %w", maxFeatures, models.ErrInvalidInput)
	}

	features, err := u.dentistRepo.ReplaceFeatures(ctx, id, names)
	if err != nil {
		return nil, err
	}
	u.changed(ctx, dentist, "features")
	return features, nil
}

// ReplaceCosts swaps the cost page. A zero price_max means a fixed price.
func (u *DentistUC) ReplaceCosts(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReplaceCostsRequest) ([]models.CostItem, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if len(req.Items) > maxCostItems {
		return nil, fmt.Errorf("at most %d cost items allowed: %w", maxCostItems, models.ErrInvalidInput)
	}

	items := make([]models.CostItem, 0, len(req.Items))
	for i, in := range req.Items {
		name := utils.SanitizeString(in.Name)
		if name == "" {
			return nil, fmt.Errorf("item %d: name is required: %w", i, models.ErrInvalidInput)
		}
		priceMax := in.PriceMax
		if priceMax == 0 {
			priceMax = in.PriceMin
		}
		if in.PriceMin < 0 || priceMax < in.PriceMin {
			return nil, fmt.Errorf("item %d: price_min must be non-negative and not above price_max: %w", i, models.ErrInvalidInput)
		}
		items = append(items, models.CostItem{
			ID:          uuid.New(),
			DentistID:   id,
			Name:        name,
			Description: strings.TrimSpace(in.Description),
			PriceMin:    in.PriceMin,
			PriceMax:    priceMax,
			Currency:    dentist.Currency,
		})
	}

	if err := u.dentistRepo.ReplaceCosts(ctx, id, items); err != nil {
		return nil, err
	}
	saved, err := u.dentistRepo.ListCosts(ctx, id)
	if err != nil {
		return nil, err
	}
	u.changed(ctx, dentist, "costs")
	return saved, nil
}

// AddFAQ appends a question at the end of the list
func (u *DentistUC) AddFAQ(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.CreateFAQRequest) (*models.FAQ, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		return nil, fmt.Errorf("question and answer are required: %w", models.ErrInvalidInput)
	}

	faq := &models.FAQ{
		ID:        uuid.New(),
		DentistID: id,
		Question:  utils.Truncate(question, maxFAQText),
		Answer:    utils.Truncate(answer, maxFAQText),
	}
	if err := u.dentistRepo.CreateFAQ(ctx, faq); err != nil {
		return nil, err
	}
	u.changed(ctx, dentist, "faqs")
	return faq, nil
}

// DeleteFAQ removes one FAQ
func (u *DentistUC) DeleteFAQ(ctx context.Context, actor models.Actor, id, faqID uuid.UUID) error {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := u.dentistRepo.DeleteFAQ(ctx, id, faqID); err != nil {
		return err
	}
	u.changed(ctx, dentist, "faqs")
	return nil
}

// ReorderFAQs rewrites FAQ positions. ids must list exactly the dentist's
// FAQs, each once.
func (u *DentistUC) ReorderFAQs(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReorderFAQRequest) ([]models.FAQ, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	current, err := u.dentistRepo.ListFAQs(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(req.IDs) != len(current) {
		return nil, fmt.Errorf("order must list all %d faqs: %w", len(current), models.ErrInvalidInput)
	}
	known := make(map[uuid.UUID]bool, len(current))
	for _, f := range current {
		known[f.ID] = true
	}
	for _, faqID := range req.IDs {
		if !known[faqID] {
			return nil, fmt.Errorf("faq %s is unknown or repeated: %w", faqID, models.ErrInvalidInput)
		}
		delete(known, faqID)
	}

	if err := u.dentistRepo.ReorderFAQs(ctx, id, req.IDs); err != nil {
		return nil, err
	}
	reordered, err := u.dentistRepo.ListFAQs(ctx, id)
	if err != nil {
		return nil, err
	}
	u.changed(ctx, dentist, "faqs")
	return reordered, nil
}
