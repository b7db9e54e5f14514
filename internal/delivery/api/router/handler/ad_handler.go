package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"adboard/config"
	"adboard/internal/delivery/api/response"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// propertiesField is the multipart part carrying the ad JSON.
const propertiesField = "properties"

// AdHandlerParams holds dependencies for AdHandler, injected by Fx.
type AdHandlerParams struct {
	fx.In

	AdUC   usecase.AdUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AdHandler serves the ad routes.
type AdHandler struct {
	adUC      usecase.AdUsecase
	maxUpload int64
	logger    *slog.Logger
}

// NewAdHandler is the constructor for AdHandler
func NewAdHandler(params AdHandlerParams) *AdHandler {
	return &AdHandler{
		adUC:      params.AdUC,
		maxUpload: uploadLimit(params.Config),
		logger:    params.Logger,
	}
}

// ListAds returns every ad.
func (h *AdHandler) ListAds(c echo.Context) error {
	ads, err := h.adUC.ListAds(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ads)
}

// ListMyAds returns the ads of the caller.
func (h *AdHandler) ListMyAds(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	ads, err := h.adUC.ListMyAds(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ads)
}

// GetAd returns the full ad card.
func (h *AdHandler) GetAd(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	ad, err := h.adUC.GetAd(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad)
}

// CreateAd handles a multipart form with the ad JSON in "properties" and an optional "image" file.
func (h *AdHandler) CreateAd(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	raw, err := h.formProperties(c)
	if err != nil {
		return done(err)
	}

	var input usecase.CreateAdInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Malformed ad properties")
	}

	if err := validate(c, &input); err != nil {
		return done(err)
	}

	image, err := formImage(c, "image", h.maxUpload)
	if err != nil {
		return done(err)
	}

	ad, err := h.adUC.CreateAd(c.Request().Context(), principal, &input, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ad)
}

// formProperties accepts the properties part either as a form value or as a JSON file part.
func (h *AdHandler) formProperties(c echo.Context) ([]byte, error) {
	if value := c.FormValue(propertiesField); value != "" {
		return []byte(value), nil
	}

	fh, err := c.FormFile(propertiesField)
	if err != nil {
		if err := response.BadRequest(c, "INVALID_INPUT", "Missing ad properties"); err != nil {
			return nil, err
		}

		return nil, errResponded
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// UpdateAd applies a partial update to an ad.
func (h *AdHandler) UpdateAd(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	var input usecase.UpdateAdInput
	if err := bindAndValidate(c, &input); err != nil {
		return done(err)
	}

	ad, err := h.adUC.UpdateAd(c.Request().Context(), principal, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad)
}

// DeleteAd removes an ad together with its comments.
func (h *AdHandler) DeleteAd(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	if err := h.adUC.DeleteAd(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UpdateAdImage replaces the ad image and echoes the stored bytes.
func (h *AdHandler) UpdateAdImage(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	image, err := formImage(c, "image", h.maxUpload)
	if err != nil {
		return done(err)
	}
	if image == nil {
		return response.HandleAppError(c, domainerrors.ErrEmptyImage)
	}

	data, err := h.adUC.UpdateAdImage(c.Request().Context(), principal, id, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return imageBlob(c, data)
}

// GetAdImage streams the ad image. It is public.
func (h *AdHandler) GetAdImage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	data, err := h.adUC.GetAdImage(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return imageBlob(c, data)
}

// GetAdQRCode returns a PNG QR code linking to the ad.
func (h *AdHandler) GetAdQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	png, err := h.adUC.GetAdQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
