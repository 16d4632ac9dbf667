package handler

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/usecase"
	"ticketboom/pkg/response"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentUseCase.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, comments)
}

func (h *CommentHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	email := c.Get("email").(string)

	comment, err := h.commentUseCase.AddComment(c.Request().Context(), c.Param("id"), email, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}
