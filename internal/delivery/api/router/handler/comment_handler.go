package handler

import (
	"log/slog"
	"net/http"

	"adboard/internal/delivery/api/response"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves the comment routes nested under an ad.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// ListComments returns the comments of an ad.
func (h *CommentHandler) ListComments(c echo.Context) error {
	adID, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), adID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

// AddComment posts a comment on an ad.
func (h *CommentHandler) AddComment(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	adID, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	var input usecase.CommentInput
	if err := bindAndValidate(c, &input); err != nil {
		return done(err)
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), principal, adID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

// UpdateComment edits the text of a comment.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	adID, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	commentID, err := pathID(c, "commentId")
	if err != nil {
		return done(err)
	}

	var input usecase.CommentInput
	if err := bindAndValidate(c, &input); err != nil {
		return done(err)
	}

	comment, err := h.commentUC.UpdateComment(c.Request().Context(), principal, adID, commentID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comment)
}

// DeleteComment removes a comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	adID, err := pathID(c, "id")
	if err != nil {
		return done(err)
	}

	commentID, err := pathID(c, "commentId")
	if err != nil {
		return done(err)
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), principal, adID, commentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
