package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
	"hirelink/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return response.Error(c, errors.BadRequest("Service ID is required", nil))
	}

	var req usecase.SubmitReviewInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	result, err := h.reviewUseCase.SubmitReview(c.Request().Context(), serviceID, userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return response.Error(c, errors.BadRequest("Service ID is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListReviews(c.Request().Context(), serviceID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}
