package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/pkg/storage"
)

const defaultMaxUploadSize = 5 << 20

func (u *DentistUC) maxUploadSize() int64 {
	if u.cfg.Storage.MaxUploadSize > 0 {
		return u.cfg.Storage.MaxUploadSize
	}
	return defaultMaxUploadSize
}

// UploadMedia stores an image in the bucket and records it. An avatar also
// becomes the listing image.
func (u *DentistUC) UploadMedia(ctx context.Context, actor models.Actor, id uuid.UUID, upload *models.MediaUpload) (*models.Media, error) {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if upload.Kind != models.MediaKindAvatar && upload.Kind != models.MediaKindGallery {
		return nil, fmt.Errorf("kind must be avatar or gallery: %w", models.ErrInvalidInput)
	}
	if upload.Size <= 0 || upload.Size > u.maxUploadSize() {
		return nil, fmt.Errorf("file must be between 1 byte and %d bytes: %w", u.maxUploadSize(), models.ErrInvalidInput)
	}

	contentType, ext, body, err := storage.SniffImage(upload.Body)
	if err != nil {
		return nil, err
	}

	key := storage.MediaKey(id, ext)
	if err := u.DentistGW.PutObject(ctx, key, body, upload.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store media: %w", err)
	}

	media := &models.Media{
		ID:          uuid.New(),
		DentistID:   id,
		Kind:        upload.Kind,
		ObjectKey:   key,
		URL:         u.DentistGW.ObjectURL(key),
		ContentType: contentType,
		SizeBytes:   upload.Size,
	}
	if err := u.dentistRepo.CreateMedia(ctx, media); err != nil {
		u.removeObject(ctx, key)
		return nil, err
	}

	if media.Kind == models.MediaKindAvatar {
		if err := u.dentistRepo.UpdateImageURL(ctx, id, media.URL); err != nil {
			return nil, err
		}
	}

	u.changed(ctx, dentist, "media")
	return media, nil
}

// DeleteMedia removes the row and then the object. Removing the current
// avatar clears the listing image.
func (u *DentistUC) DeleteMedia(ctx context.Context, actor models.Actor, id, mediaID uuid.UUID) error {
	dentist, err := u.authorize(ctx, actor, id)
	if err != nil {
		return err
	}

	media, err := u.dentistRepo.GetMedia(ctx, id, mediaID)
	if err != nil {
		return err
	}
	if err := u.dentistRepo.DeleteMedia(ctx, id, mediaID); err != nil {
		return err
	}
	u.removeObject(ctx, media.ObjectKey)

	if dentist.ImageURL != nil && *dentist.ImageURL == media.URL {
		if err := u.dentistRepo.UpdateImageURL(ctx, id, ""); err != nil {
			return err
		}
	}

	u.changed(ctx, dentist, "media")
	return nil
}

// removeObject is best effort; an orphaned object only costs storage
func (u *DentistUC) removeObject(ctx context.Context, key string) {
	if err := u.DentistGW.RemoveObject(ctx, key); err != nil {
		logger.WarnCtx(ctx, "Failed to remove media object",
			logger.String("key", key),
			logger.Err(err))
	}
}
