package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/errors"
	mockUsecase "adboard/internal/mocks/usecase"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestCommentHandler(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUsecase.MockCommentUsecase) {
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewCommentHandler(CommentHandlerParams{CommentUC: commentUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	e := newTestEcho()
	auth := signedIn(principal)
	e.GET("/ads/:id/comments", h.ListComments, auth)
	e.POST("/ads/:id/comments", h.AddComment, auth)
	e.PATCH("/ads/:id/comments/:commentId", h.UpdateComment, auth)
	e.DELETE("/ads/:id/comments/:commentId", h.DeleteComment, auth)

	return e, commentUC
}

func TestCommentHandler_ListComments(t *testing.T) {
	e, commentUC := createTestCommentHandler(t, owner)

	commentUC.EXPECT().ListComments(mock.Anything, int64(10)).Return(&usecase.CommentsOutput{
		Count:   1,
		Results: []*usecase.CommentOutput{{PK: 1, Text: "is it still available?", CreatedAt: 1717234200000}},
	}, nil)

	rec := serve(e, http.MethodGet, "/ads/10/comments", nil, "")

	assertStatus(t, http.StatusOK, rec)
	var out usecase.CommentsOutput
	decodeData(t, rec, &out)
	assert.Equal(t, int64(1717234200000), out.Results[0].CreatedAt)
}

func TestCommentHandler_AddComment(t *testing.T) {
	e, commentUC := createTestCommentHandler(t, owner)

	commentUC.EXPECT().
		AddComment(mock.Anything, owner, int64(10), &usecase.CommentInput{Text: "is it still available?"}).
		Return(&usecase.CommentOutput{PK: 5, Text: "is it still available?"}, nil)

	rec := serveJSON(e, http.MethodPost, "/ads/10/comments", map[string]string{"text": "is it still available?"})

	assertStatus(t, http.StatusCreated, rec)
}

func TestCommentHandler_AddComment_TooShort(t *testing.T) {
	e, _ := createTestCommentHandler(t, owner)

	rec := serveJSON(e, http.MethodPost, "/ads/10/comments", map[string]string{"text": "hi"})

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, map[string]any{"text": "min"}, decode(t, rec).Error.Details)
}

func TestCommentHandler_UpdateComment(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "owner", wantStatus: http.StatusOK},
		{name: "other user", err: domainerrors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "wrong ad", err: domainerrors.ErrCommentNotFound, wantStatus: http.StatusNotFound},
		{name: "concurrent edit", err: domainerrors.ErrConflict, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, commentUC := createTestCommentHandler(t, owner)

			call := commentUC.EXPECT().UpdateComment(mock.Anything, owner, int64(10), int64(7), &usecase.CommentInput{Text: "edited comment text"})
			if tt.err != nil {
				call.Return(nil, errors.WithStack(tt.err))
			} else {
				call.Return(&usecase.CommentOutput{PK: 7, Text: "edited comment text"}, nil)
			}

			rec := serveJSON(e, http.MethodPatch, "/ads/10/comments/7", map[string]string{"text": "edited comment text"})

			assertStatus(t, tt.wantStatus, rec)
		})
	}
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	e, commentUC := createTestCommentHandler(t, admin)

	commentUC.EXPECT().DeleteComment(mock.Anything, admin, int64(10), int64(7)).Return(nil)

	rec := serve(e, http.MethodDelete, "/ads/10/comments/7", nil, "")

	assertStatus(t, http.StatusNoContent, rec)
}

func TestCommentHandler_InvalidCommentID(t *testing.T) {
	e, _ := createTestCommentHandler(t, owner)

	rec := serve(e, http.MethodDelete, "/ads/10/comments/0", nil, "")

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}
