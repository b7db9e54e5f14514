package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"adboard/config"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/errors"
	mockUsecase "adboard/internal/mocks/usecase"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAdHandler(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUsecase.MockAdUsecase) {
	adUC := mockUsecase.NewMockAdUsecase(t)
	h := NewAdHandler(AdHandlerParams{
		AdUC:   adUC,
		Config: &config.Config{Image: &config.ImageConfig{MaxUploadSize: "1KB"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.GET("/ads", h.ListAds)
	e.GET("/ads/:id/image", h.GetAdImage)
	e.GET("/ads/:id/qr", h.GetAdQRCode)

	auth := signedIn(principal)
	e.GET("/ads/me", h.ListMyAds, auth)
	e.POST("/ads", h.CreateAd, auth)
	e.GET("/ads/:id", h.GetAd, auth)
	e.PATCH("/ads/:id", h.UpdateAd, auth)
	e.DELETE("/ads/:id", h.DeleteAd, auth)
	e.PATCH("/ads/:id/image", h.UpdateAdImage, auth)

	return e, adUC
}

func TestAdHandler_ListAds(t *testing.T) {
	e, adUC := createTestAdHandler(t, entity.Principal{})

	adUC.EXPECT().ListAds(mock.Anything).Return(&usecase.AdsOutput{
		Count:   1,
		Results: []*usecase.AdOutput{{PK: 10, Title: "Bike", Price: 100, Author: 1}},
	}, nil)

	rec := serve(e, http.MethodGet, "/ads", nil, "")

	assertStatus(t, http.StatusOK, rec)
	var out usecase.AdsOutput
	decodeData(t, rec, &out)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, int64(10), out.Results[0].PK)
}

func TestAdHandler_Unauthenticated(t *testing.T) {
	e, _ := createTestAdHandler(t, entity.Principal{})

	rec := serve(e, http.MethodGet, "/ads/me", nil, "")

	assertStatus(t, http.StatusUnauthorized, rec)
}

func TestAdHandler_CreateAd(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().
		CreateAd(mock.Anything, owner,
			&usecase.CreateAdInput{Title: "Road bike", Description: "Barely used, 21 gears", Price: 15000},
			&usecase.ImageUpload{Filename: "bike.png", Data: pngHeader},
		).
		Return(&usecase.AdOutput{PK: 11, Title: "Road bike", Price: 15000, Author: 1, Image: "/ads/11/image"}, nil)

	body, contentType := multipartBody(t,
		map[string]string{propertiesField: `{"title":"Road bike","description":"Barely used, 21 gears","price":15000}`},
		"image", "bike.png", pngHeader,
	)
	rec := serve(e, http.MethodPost, "/ads", body, contentType)

	assertStatus(t, http.StatusCreated, rec)
	var out usecase.AdOutput
	decodeData(t, rec, &out)
	assert.Equal(t, "/ads/11/image", out.Image)
}

func TestAdHandler_CreateAd_WithoutImage(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().
		CreateAd(mock.Anything, owner, mock.AnythingOfType("*usecase.CreateAdInput"), (*usecase.ImageUpload)(nil)).
		Return(&usecase.AdOutput{PK: 12}, nil)

	body, contentType := multipartBody(t,
		map[string]string{propertiesField: `{"title":"Road bike","description":"Barely used, 21 gears","price":0}`},
		"", "", nil,
	)
	rec := serve(e, http.MethodPost, "/ads", body, contentType)

	assertStatus(t, http.StatusCreated, rec)
}

func TestAdHandler_CreateAd_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		properties map[string]string
		image      []byte
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing properties",
			image:      pngHeader,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "malformed properties",
			properties: map[string]string{propertiesField: `{"title":`},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "price out of range",
			properties: map[string]string{propertiesField: `{"title":"Road bike","description":"Barely used, 21 gears","price":10000001}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "image over limit",
			properties: map[string]string{propertiesField: `{"title":"Road bike","description":"Barely used, 21 gears","price":1}`},
			image:      bytes.Repeat([]byte{0xff}, 2048),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "IMAGE_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestAdHandler(t, owner)

			fileField := ""
			if tt.image != nil {
				fileField = "image"
			}
			body, contentType := multipartBody(t, tt.properties, fileField, "bike.png", tt.image)
			rec := serve(e, http.MethodPost, "/ads", body, contentType)

			assertStatus(t, tt.wantStatus, rec)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestAdHandler_GetAd(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().GetAd(mock.Anything, owner, int64(10)).Return(&usecase.ExtendedAdOutput{PK: 10, Email: "u1@example.com"}, nil)
	adUC.EXPECT().GetAd(mock.Anything, owner, int64(404)).Return(nil, errors.WithStack(domainerrors.ErrAdNotFound))

	rec := serve(e, http.MethodGet, "/ads/10", nil, "")
	assertStatus(t, http.StatusOK, rec)

	rec = serve(e, http.MethodGet, "/ads/404", nil, "")
	assertStatus(t, http.StatusNotFound, rec)
	assert.Equal(t, "AD_NOT_FOUND", decode(t, rec).Error.Code)

	rec = serve(e, http.MethodGet, "/ads/abc", nil, "")
	assertStatus(t, http.StatusBadRequest, rec)
}

func TestAdHandler_UpdateAd(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().
		UpdateAd(mock.Anything, owner, int64(10), mock.MatchedBy(func(in *usecase.UpdateAdInput) bool {
			return in.Title == nil && in.Price != nil && *in.Price == 900
		})).
		Return(nil, errors.WithStack(domainerrors.ErrForbidden))

	rec := serveJSON(e, http.MethodPatch, "/ads/10", map[string]int{"price": 900})

	assertStatus(t, http.StatusForbidden, rec)
}

func TestAdHandler_DeleteAd(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().DeleteAd(mock.Anything, owner, int64(10)).Return(nil)

	rec := serve(e, http.MethodDelete, "/ads/10", nil, "")

	assertStatus(t, http.StatusNoContent, rec)
	assert.Empty(t, rec.Body.String())
}

func TestAdHandler_DeleteAd_Conflict(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().DeleteAd(mock.Anything, owner, int64(10)).Return(errors.WithStack(domainerrors.ErrConflict))

	rec := serve(e, http.MethodDelete, "/ads/10", nil, "")

	assertStatus(t, http.StatusConflict, rec)
}

func TestAdHandler_UpdateAdImage(t *testing.T) {
	e, adUC := createTestAdHandler(t, owner)

	adUC.EXPECT().
		UpdateAdImage(mock.Anything, owner, int64(10), &usecase.ImageUpload{Filename: "new.png", Data: pngHeader}).
		Return(pngHeader, nil)

	body, contentType := multipartBody(t, nil, "image", "new.png", pngHeader)
	rec := serve(e, http.MethodPatch, "/ads/10/image", body, contentType)

	assertStatus(t, http.StatusOK, rec)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngHeader, rec.Body.Bytes())
}

func TestAdHandler_UpdateAdImage_MissingFile(t *testing.T) {
	e, _ := createTestAdHandler(t, owner)

	body, contentType := multipartBody(t, map[string]string{"note": "no file"}, "", "", nil)
	rec := serve(e, http.MethodPatch, "/ads/10/image", body, contentType)

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "EMPTY_IMAGE", decode(t, rec).Error.Code)
}

func TestAdHandler_UpdateAdImage_NotMultipart(t *testing.T) {
	e, _ := createTestAdHandler(t, owner)

	rec := serve(e, http.MethodPatch, "/ads/10/image", strings.NewReader("raw"), "text/plain")

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "INVALID_MULTIPART", decode(t, rec).Error.Code)
}

func TestAdHandler_PublicAssets(t *testing.T) {
	e, adUC := createTestAdHandler(t, entity.Principal{})

	adUC.EXPECT().GetAdImage(mock.Anything, int64(10)).Return(pngHeader, nil)
	adUC.EXPECT().GetAdImage(mock.Anything, int64(11)).Return(nil, errors.WithStack(domainerrors.ErrImageNotFound))
	adUC.EXPECT().GetAdQRCode(mock.Anything, int64(10)).Return([]byte("qr-bytes"), nil)

	rec := serve(e, http.MethodGet, "/ads/10/image", nil, "")
	assertStatus(t, http.StatusOK, rec)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = serve(e, http.MethodGet, "/ads/11/image", nil, "")
	assertStatus(t, http.StatusNotFound, rec)

	rec = serve(e, http.MethodGet, "/ads/10/qr", nil, "")
	assertStatus(t, http.StatusOK, rec)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestAdHandler_InternalErrorIsGeneric(t *testing.T) {
	e, adUC := createTestAdHandler(t, entity.Principal{})

	adUC.EXPECT().ListAds(mock.Anything).Return(nil, errors.New("connection refused"))

	rec := serve(e, http.MethodGet, "/ads", nil, "")

	assertStatus(t, http.StatusInternalServerError, rec)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
