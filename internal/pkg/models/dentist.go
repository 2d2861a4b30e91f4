package models

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/senyum/internal/pkg/geo"
)

// Dentist moderation states
const (
	DentistStatusPending   = "pending"
	DentistStatusVerified  = "verified"
	DentistStatusRejected  = "rejected"
	DentistStatusSuspended = "suspended"
)

// Consultation types
const (
	ConsultationInPerson = "in_person"
	ConsultationVideo    = "video"
)

// DefaultCurrency applies to prices stored without one
const DefaultCurrency = "IDR"

// Media kinds
const (
	MediaKindAvatar  = "avatar"
	MediaKindGallery = "gallery"
)

// IsValidDentistStatus reports whether status is a known moderation state
func IsValidDentistStatus(status string) bool {
	switch status {
	case DentistStatusPending, DentistStatusVerified, DentistStatusRejected, DentistStatusSuspended:
		return true
	}
	return false
}

// DentistSummary is the listing projection of a dentist, used by search and
// nearby results
type DentistSummary struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	ClinicName     string    `json:"clinic_name" db:"clinic_name"`
	Specialty      string    `json:"specialty" db:"specialty"`
	City           string    `json:"city" db:"city"`
	Latitude       *float64  `json:"latitude" db:"latitude"`
	Longitude      *float64  `json:"longitude" db:"longitude"`
	Rating         float64   `json:"rating" db:"rating"`
	ReviewCount    int       `json:"review_count" db:"review_count"`
	ImageURL       *string   `json:"image_url" db:"image_url"`
	IsVerified     bool      `json:"is_verified" db:"is_verified"`
	OffersInPerson bool      `json:"offers_in_person" db:"offers_in_person"`
	OffersVideo    bool      `json:"offers_video" db:"offers_video"`
	PriceFrom      *float64  `json:"price_from" db:"price_from"`
	Currency       string    `json:"currency" db:"currency"`
}

// Location implements geo.Locatable
func (d DentistSummary) Location() (geo.Coordinate, bool) {
	return geo.FromNullable(d.Latitude, d.Longitude)
}

// Offers reports whether the dentist supports the consultation type
func (d DentistSummary) Offers(consultationType string) bool {
	switch consultationType {
	case ConsultationInPerson:
		return d.OffersInPerson
	case ConsultationVideo:
		return d.OffersVideo
	}
	return false
}

// Dentist is a full directory record
type Dentist struct {
	DentistSummary
	UserID          *uuid.UUID     `json:"user_id,omitempty" db:"user_id"`
	Bio             string         `json:"bio" db:"bio"`
	Phone           string         `json:"phone" db:"phone"`
	Email           string         `json:"email" db:"email"`
	Address         string         `json:"address" db:"address"`
	Geohash         *string        `json:"geohash,omitempty" db:"geohash"`
	Languages       pq.StringArray `json:"languages" db:"languages"`
	YearsExperience int            `json:"years_experience" db:"years_experience"`
	Status          string         `json:"status" db:"status"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// IsOwnedBy reports whether userID is linked to the profile
func (d *Dentist) IsOwnedBy(userID uuid.UUID) bool {
	return d.UserID != nil && *d.UserID == userID
}

// NearbyDentist is one nearby search hit
type NearbyDentist struct {
	DentistSummary
	DistanceKm float64 `json:"distance_km"`
}

// Feature is one bullet of a dentist's service list
type Feature struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DentistID uuid.UUID `json:"-" db:"dentist_id"`
	Name      string    `json:"name" db:"name"`
	Position  int       `json:"position" db:"position"`
}

// FAQ is a question and answer shown on a profile
type FAQ struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DentistID uuid.UUID `json:"-" db:"dentist_id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Media is an uploaded image
type Media struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DentistID   uuid.UUID `json:"-" db:"dentist_id"`
	Kind        string    `json:"kind" db:"kind"`
	ObjectKey   string    `json:"-" db:"object_key"`
	URL         string    `json:"url" db:"url"`
	ContentType string    `json:"content_type" db:"content_type"`
	SizeBytes   int64     `json:"size_bytes" db:"size_bytes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CostItem is one line of the cost page
type CostItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DentistID   uuid.UUID `json:"-" db:"dentist_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	PriceMin    float64   `json:"price_min" db:"price_min"`
	PriceMax    float64   `json:"price_max" db:"price_max"`
	Currency    string    `json:"currency" db:"currency"`
}

// Review is a patient rating of a dentist
type Review struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DentistID   uuid.UUID `json:"dentist_id" db:"dentist_id"`
	PatientID   uuid.UUID `json:"patient_id" db:"patient_id"`
	PatientName string    `json:"patient_name" db:"patient_name"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     string    `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DentistProfile is the public profile page
type DentistProfile struct {
	*Dentist
	Features []Feature `json:"features"`
	FAQs     []FAQ     `json:"faqs"`
	Media    []Media   `json:"media"`
}

// CostPage is the public price list of a dentist
type CostPage struct {
	Dentist DentistSummary `json:"dentist"`
	Items   []CostItem     `json:"items"`
}

// DentistSearchFilter narrows the directory listing
type DentistSearchFilter struct {
	Query        string
	Specialty    string
	City         string
	Area         string // geohash prefix
	MinRating    float64
	Consultation string
	Page         int
	Limit        int
}

// Offset is the row offset of the requested page
func (f DentistSearchFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// Page is one page of a listing
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// LocationRequest is the payload of POST /location
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateDentistRequest creates the caller's own profile
type CreateDentistRequest struct {
	Name            string   `json:"name"`
	ClinicName      string   `json:"clinic_name"`
	Specialty       string   `json:"specialty"`
	Bio             string   `json:"bio"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Languages       []string `json:"languages"`
	YearsExperience int      `json:"years_experience"`
	OffersInPerson  bool     `json:"offers_in_person"`
	OffersVideo     bool     `json:"offers_video"`
	Currency        string   `json:"currency"`
}

// UpdateProfileRequest changes display fields; nil fields are left as is
type UpdateProfileRequest struct {
	Name            *string  `json:"name"`
	ClinicName      *string  `json:"clinic_name"`
	Specialty       *string  `json:"specialty"`
	Bio             *string  `json:"bio"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	City            *string  `json:"city"`
	Languages       []string `json:"languages"`
	YearsExperience *int     `json:"years_experience"`
	OffersInPerson  *bool    `json:"offers_in_person"`
	OffersVideo     *bool    `json:"offers_video"`
	Currency        *string  `json:"currency"`
}

// UpdateLocationRequest sets coordinates directly or through an address
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// ReplaceFeaturesRequest replaces the whole feature list
type ReplaceFeaturesRequest struct {
	Features []string `json:"features"`
}

// CostItemInput is one submitted cost line
type CostItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"price_min"`
	PriceMax    float64 `json:"price_max"`
}

// ReplaceCostsRequest replaces the whole cost page
type ReplaceCostsRequest struct {
	Items []CostItemInput `json:"items"`
}

// CreateFAQRequest appends a FAQ
type CreateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ReorderFAQRequest lists every FAQ id in the new order
type ReorderFAQRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// CreateReviewRequest rates a dentist
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// StatusUpdateRequest moderates a dentist
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OwnerUpdateRequest links a profile to another user
type OwnerUpdateRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// MediaUpload is a validated multipart upload
type MediaUpload struct {
	Kind     string
	Filename string
	Size     int64
	Body     io.Reader
}
