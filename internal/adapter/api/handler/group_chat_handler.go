package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
	"hirelink/pkg/utils"
)

type GroupChatHandler struct {
	groupChatUseCase *usecase.GroupChatUseCase
}

func NewGroupChatHandler(groupChatUseCase *usecase.GroupChatUseCase) *GroupChatHandler {
	return &GroupChatHandler{
		groupChatUseCase: groupChatUseCase,
	}
}

func (h *GroupChatHandler) SendMessage(c echo.Context) error {
	var req usecase.SendGroupMessageInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.groupChatUseCase.SendMessage(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *GroupChatHandler) ListMessages(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.groupChatUseCase.ListMessages(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pagination.Page, pagination.PageSize)
}
