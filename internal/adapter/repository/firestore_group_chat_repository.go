package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
)

// The group room is a single flat collection with no parent document;
// everyone is implicitly a participant.
const groupChatCollection = "group-chat"

type firestoreGroupChatRepository struct {
	client *firestore.Client
}

func NewFirestoreGroupChatRepository(client *firestore.Client) repository.GroupChatRepository {
	return &firestoreGroupChatRepository{
		client: client,
	}
}

func (r *firestoreGroupChatRepository) CreateMessage(ctx context.Context, message *entity.GroupMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.client.Collection(groupChatCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create group message", err)
	}

	return nil
}

func (r *firestoreGroupChatRepository) GetMessageByID(ctx context.Context, id string) (*entity.GroupMessage, error) {
	doc, err := r.client.Collection(groupChatCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get group message", err)
	}

	var message entity.GroupMessage
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse group message data", err)
	}

	return &message, nil
}

func (r *firestoreGroupChatRepository) ListMessages(ctx context.Context, limit, offset int) ([]*entity.GroupMessage, int64, error) {
	query := r.client.Collection(groupChatCollection).OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list group messages", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var messages []*entity.GroupMessage
	for _, doc := range allDocs[start:end] {
		var message entity.GroupMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse group message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}
