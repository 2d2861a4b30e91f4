package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

// UpdateStatus moderates a dentist profile
func (u *DentistUC) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.StatusUpdateRequest) (*models.Dentist, error) {
	if !models.IsValidDentistStatus(req.Status) {
		return nil, fmt.Errorf("unknown status %q: %w", req.Status, models.ErrInvalidInput)
	}

	dentist, err := u.dentistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.dentistRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Dentist status changed",
		logger.String("dentist_id", id.String()),
		logger.String("from", dentist.Status),
		logger.String("to", req.Status))

	dentist.Status = req.Status
	dentist.IsVerified = req.Status == models.DentistStatusVerified
	u.changed(ctx, dentist, "status")
	return dentist, nil
}

// ReassignOwner links the profile to another user account
func (u *DentistUC) ReassignOwner(ctx context.Context, id uuid.UUID, req *models.OwnerUpdateRequest) (*models.Dentist, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("user_id is required: %w", models.ErrInvalidInput)
	}

	dentist, err := u.dentistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dentist.IsOwnedBy(req.UserID) {
		return dentist, nil
	}
	if err := u.dentistRepo.ReassignOwner(ctx, id, req.UserID); err != nil {
		return nil, err
	}

	userID := req.UserID
	dentist.UserID = &userID
	u.changed(ctx, dentist, "owner")
	return dentist, nil
}
