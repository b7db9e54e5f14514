package usecase

import (
	"context"

	"adboard/internal/domain/entity"
)

// ImageUpload is an uploaded file as received from the transport.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// CreateAdInput defines the properties of a new ad.
type CreateAdInput struct {
	Title       string `json:"title" validate:"required,min=4,max=32"`
	Description string `json:"description" validate:"required,min=8,max=64"`
	Price       int    `json:"price" validate:"min=0,max=10000000"`
}

// UpdateAdInput is a partial ad update. Nil fields are left untouched.
type UpdateAdInput struct {
	Title       *string `json:"title" validate:"omitempty,min=4,max=32"`
	Description *string `json:"description" validate:"omitempty,min=8,max=64"`
	Price       *int    `json:"price" validate:"omitempty,min=0,max=10000000"`
}

// AdOutput is the short ad representation used in listings.
type AdOutput struct {
	Author int64  `json:"author"`
	Image  string `json:"image"`
	PK     int64  `json:"pk"`
	Price  int    `json:"price"`
	Title  string `json:"title"`
}

// AdsOutput is a counted list of ads.
type AdsOutput struct {
	Count   int         `json:"count"`
	Results []*AdOutput `json:"results"`
}

// ExtendedAdOutput is the full ad card including the author's contacts.
type ExtendedAdOutput struct {
	PK              int64  `json:"pk"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
	Description     string `json:"description"`
	Email           string `json:"email"`
	Image           string `json:"image"`
	Phone           string `json:"phone"`
	Price           int    `json:"price"`
	Title           string `json:"title"`
}

// AdUsecase defines the ad operations.
type AdUsecase interface {
	ListAds(ctx context.Context) (*AdsOutput, error)
	GetAd(ctx context.Context, principal entity.Principal, id int64) (*ExtendedAdOutput, error)
	ListMyAds(ctx context.Context, principal entity.Principal) (*AdsOutput, error)
	CreateAd(ctx context.Context, principal entity.Principal, input *CreateAdInput, image *ImageUpload) (*AdOutput, error)
	UpdateAd(ctx context.Context, principal entity.Principal, id int64, input *UpdateAdInput) (*AdOutput, error)
	DeleteAd(ctx context.Context, principal entity.Principal, id int64) error
	// UpdateAdImage replaces the ad image and returns the stored bytes.
	UpdateAdImage(ctx context.Context, principal entity.Principal, id int64, image *ImageUpload) ([]byte, error)
	GetAdImage(ctx context.Context, id int64) ([]byte, error)
	// GetAdQRCode renders a PNG QR code linking to the ad.
	GetAdQRCode(ctx context.Context, id int64) ([]byte, error)
}
