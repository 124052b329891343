package handler

import (
	"hirelink/internal/usecase"
)

var (
	userHandler      *UserHandler
	serviceHandler   *ServiceHandler
	jobPostHandler   *JobPostHandler
	reviewHandler    *ReviewHandler
	chatHandler      *ChatHandler
	groupChatHandler *GroupChatHandler
	syncHandler      *SyncHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	jobPostUseCase *usecase.JobPostUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	chatUseCase *usecase.ChatUseCase,
	groupChatUseCase *usecase.GroupChatUseCase,
	syncUseCase *usecase.SyncUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	serviceHandler = NewServiceHandler(serviceUseCase)
	jobPostHandler = NewJobPostHandler(jobPostUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	groupChatHandler = NewGroupChatHandler(groupChatUseCase)
	syncHandler = NewSyncHandler(syncUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetServiceHandler() *ServiceHandler {
	return serviceHandler
}

func GetJobPostHandler() *JobPostHandler {
	return jobPostHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetGroupChatHandler() *GroupChatHandler {
	return groupChatHandler
}

func GetSyncHandler() *SyncHandler {
	return syncHandler
}
