package handler

import (
	"io"
	"net/http"
	"strconv"

	"adboard/config"
	"adboard/internal/delivery/api/middleware"
	"adboard/internal/delivery/api/response"
	"adboard/internal/delivery/api/validator"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/errors"
	"adboard/internal/usecase"
	"adboard/internal/util"

	"github.com/labstack/echo/v4"
)

// errResponded signals that the helper already wrote the response.
var errResponded = errors.New("response already written")

// principalOrReject returns the caller, answering 401 when none was resolved.
func principalOrReject(c echo.Context) (entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		if err := response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required"); err != nil {
			return entity.Principal{}, err
		}

		return entity.Principal{}, errResponded
	}

	return principal, nil
}

// pathID parses a numeric path parameter, answering 400 when it is malformed.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err := response.BadRequest(c, "INVALID_ID", "Invalid "+name); err != nil {
			return 0, err
		}

		return 0, errResponded
	}

	return id, nil
}

// bindAndValidate binds the request body into dst and runs its validation tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		if err := response.BindingError(c, "INVALID_INPUT", "Malformed request body"); err != nil {
			return err
		}

		return errResponded
	}

	return validate(c, dst)
}

func validate(c echo.Context, dst any) error {
	if err := c.Validate(dst); err != nil {
		if err := response.ValidationFailed(c, validator.FieldErrors(err)); err != nil {
			return err
		}

		return errResponded
	}

	return nil
}

// done converts the helpers' sentinel into a nil handler result.
func done(err error) error {
	if errors.Is(err, errResponded) {
		return nil
	}

	return err
}

// uploadLimit resolves the configured upload size, falling back to 5MB.
func uploadLimit(cfg *config.Config) int64 {
	const fallback = 5 << 20
	if cfg == nil || cfg.Image == nil {
		return fallback
	}

	limit, err := util.ParseBytes(cfg.Image.MaxUploadSize)
	if err != nil || limit <= 0 {
		return fallback
	}

	return limit
}

// formImage reads a multipart file part. A missing part yields nil.
func formImage(c echo.Context, field string, limit int64) (*usecase.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		if err := response.BadRequest(c, "INVALID_MULTIPART", "Expected a multipart/form-data body"); err != nil {
			return nil, err
		}

		return nil, errResponded
	}

	if fh.Size > limit {
		tooLarge := domainerrors.ErrImageTooLarge
		if err := response.Error(c, tooLarge.HTTPCode(), tooLarge.ErrorCode(), "Image exceeds "+util.FormatBytes(limit), nil); err != nil {
			return nil, err
		}

		return nil, errResponded
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &usecase.ImageUpload{Filename: fh.Filename, Data: data}, nil
}

// imageBlob writes raw image bytes with a sniffed content type.
func imageBlob(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}
