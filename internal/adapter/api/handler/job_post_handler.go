package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
	"hirelink/pkg/utils"
)

type JobPostHandler struct {
	jobPostUseCase *usecase.JobPostUseCase
}

func NewJobPostHandler(jobPostUseCase *usecase.JobPostUseCase) *JobPostHandler {
	return &JobPostHandler{
		jobPostUseCase: jobPostUseCase,
	}
}

func (h *JobPostHandler) CreateJobPost(c echo.Context) error {
	var req usecase.CreateJobPostInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	post, err := h.jobPostUseCase.CreateJobPost(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *JobPostHandler) GetJobPost(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return response.Error(c, errors.BadRequest("Job post ID is required", nil))
	}

	post, err := h.jobPostUseCase.GetJobPost(c.Request().Context(), postID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *JobPostHandler) ListJobPosts(c echo.Context) error {
	category := c.QueryParam("category")
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	posts, total, err := h.jobPostUseCase.ListJobPosts(c.Request().Context(), category, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, pagination.Page, pagination.PageSize)
}

func (h *JobPostHandler) ListMyJobPosts(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	posts, total, err := h.jobPostUseCase.ListMyJobPosts(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, pagination.Page, pagination.PageSize)
}

func (h *JobPostHandler) UpdateJobPost(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return response.Error(c, errors.BadRequest("Job post ID is required", nil))
	}

	var req usecase.UpdateJobPostInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	post, err := h.jobPostUseCase.UpdateJobPost(c.Request().Context(), postID, userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *JobPostHandler) DeleteJobPost(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return response.Error(c, errors.BadRequest("Job post ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.jobPostUseCase.DeleteJobPost(c.Request().Context(), postID, userID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Job post deleted")
}

func (h *JobPostHandler) SubmitProposal(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return response.Error(c, errors.BadRequest("Job post ID is required", nil))
	}

	userID := c.Get("uid").(string)

	post, err := h.jobPostUseCase.SubmitProposal(c.Request().Context(), postID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}
