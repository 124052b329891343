package usecase

import (
	"context"
	"fmt"
	"time"

	"hirelink/internal/domain/entity"
	"hirelink/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
	intents  []*entity.SyncIntent
	nextID   int
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*entity.Service)}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (r *fakeServiceRepo) recordIntent(objectID string, intent *entity.SyncIntent) {
	if intent == nil {
		return
	}
	r.nextID++
	intent.ID = fmt.Sprintf("intent-%d", r.nextID)
	intent.ObjectID = objectID
	intent.Status = entity.SyncStatusPending
	r.intents = append(r.intents, intent)
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) error {
	if service.ID == "" {
		r.nextID++
		service.ID = fmt.Sprintf("svc-%d", r.nextID)
	}
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt
	r.services[service.ID] = service
	r.recordIntent(service.ID, intent)
	return nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) error {
	r.services[service.ID] = service
	r.recordIntent(service.ID, intent)
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string, intent *entity.SyncIntent) error {
	delete(r.services, id)
	r.recordIntent(id, intent)
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	return service, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Service, int64, error) {
	var services []*entity.Service
	for _, s := range r.services {
		if category == "" || category == "All" || s.Category == category {
			services = append(services, s)
		}
	}
	return services, int64(len(services)), nil
}

func (r *fakeServiceRepo) ListByProviderID(ctx context.Context, providerID string, limit, offset int) ([]*entity.Service, int64, error) {
	var services []*entity.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			services = append(services, s)
		}
	}
	return services, int64(len(services)), nil
}

func (r *fakeServiceRepo) UpdateProviderFields(ctx context.Context, providerID, name, avatarURL string) ([]string, error) {
	var ids []string
	for _, s := range r.services {
		if s.ProviderID == providerID {
			s.ProviderName = name
			s.ProviderAvatar = avatarURL
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

type fakeOutboxRepo struct {
	enqueued []*entity.SyncIntent
	done     []string
	failed   []string
}

func (r *fakeOutboxRepo) Enqueue(ctx context.Context, intent *entity.SyncIntent) error {
	r.enqueued = append(r.enqueued, intent)
	return nil
}

func (r *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]*entity.SyncIntent, error) {
	return r.enqueued, nil
}

func (r *fakeOutboxRepo) MarkDone(ctx context.Context, id string) error {
	r.done = append(r.done, id)
	return nil
}

func (r *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, attempts int, lastError string, permanent bool) error {
	r.failed = append(r.failed, id)
	return nil
}

type fakeIndex struct {
	docs           map[string]map[string]interface{}
	failUpserts    bool
	failPartials   bool
	failDeletes    bool
	partialUpdates []string
	deletes        []string
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: make(map[string]map[string]interface{})}
}

func (i *fakeIndex) Upsert(ctx context.Context, objectID string, record map[string]interface{}) error {
	if i.failUpserts {
		return fmt.Errorf("index unavailable")
	}
	i.docs[objectID] = record
	return nil
}

func (i *fakeIndex) PartialUpdate(ctx context.Context, objectID string, fields map[string]interface{}) error {
	if i.failPartials {
		return fmt.Errorf("index unavailable")
	}
	i.partialUpdates = append(i.partialUpdates, objectID)
	if doc, ok := i.docs[objectID]; ok {
		for k, v := range fields {
			doc[k] = v
		}
	}
	return nil
}

func (i *fakeIndex) Delete(ctx context.Context, objectID string) error {
	if i.failDeletes {
		return fmt.Errorf("index unavailable")
	}
	i.deletes = append(i.deletes, objectID)
	delete(i.docs, objectID)
	return nil
}

func (i *fakeIndex) Search(ctx context.Context, query, category string) ([]map[string]interface{}, error) {
	var hits []map[string]interface{}
	for _, doc := range i.docs {
		hits = append(hits, doc)
	}
	return hits, nil
}

type publishedEvent struct {
	eventType  string
	recipients []string
	payload    interface{}
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) PublishToUsers(ctx context.Context, eventType string, recipients []string, payload interface{}) error {
	p.events = append(p.events, publishedEvent{eventType: eventType, recipients: recipients, payload: payload})
	return nil
}

func (p *fakePublisher) Broadcast(ctx context.Context, eventType string, payload interface{}) error {
	p.events = append(p.events, publishedEvent{eventType: eventType, payload: payload})
	return nil
}

type fakeConversationRepo struct {
	conversations  map[string]*entity.Conversation
	messages       map[string][]*entity.Message
	failPreview    bool
	previewUpdates int
	readMarks      int
	nextID         int
}

func newFakeConversationRepo(conversations ...*entity.Conversation) *fakeConversationRepo {
	repo := &fakeConversationRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
	}
	for _, c := range conversations {
		repo.conversations[c.ID] = c
	}
	return repo
}

func (r *fakeConversationRepo) FindOrCreate(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	if existing, ok := r.conversations[conversation.ID]; ok {
		return existing, nil
	}
	conversation.CreatedAt = time.Now()
	r.conversations[conversation.ID] = conversation
	return conversation, nil
}

func (r *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *fakeConversationRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	var conversations []*entity.Conversation
	for _, c := range r.conversations {
		if c.HasParticipant(userID) {
			conversations = append(conversations, c)
		}
	}
	return conversations, int64(len(conversations)), nil
}

func (r *fakeConversationRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.nextID++
	message.ID = fmt.Sprintf("msg-%d", r.nextID)
	message.CreatedAt = time.Now()
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], message)
	return nil
}

func (r *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	messages := r.messages[conversationID]
	return messages, int64(len(messages)), nil
}

func (r *fakeConversationRepo) UpdateLastMessage(ctx context.Context, conversationID, text, senderID string, at time.Time) error {
	if r.failPreview {
		return fmt.Errorf("preview update failed")
	}
	r.previewUpdates++
	if c, ok := r.conversations[conversationID]; ok {
		c.LastMessageText = text
		c.LastSenderID = senderID
		c.LastMessageAt = at
		if c.LastRead == nil {
			c.LastRead = make(map[string]time.Time)
		}
		c.LastRead[senderID] = at
	}
	return nil
}

func (r *fakeConversationRepo) MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error {
	r.readMarks++
	if c, ok := r.conversations[conversationID]; ok {
		if c.LastRead == nil {
			c.LastRead = make(map[string]time.Time)
		}
		c.LastRead[userID] = at
	}
	return nil
}

type fakeGroupChatRepo struct {
	messages map[string]*entity.GroupMessage
	order    []string
	nextID   int
}

func newFakeGroupChatRepo() *fakeGroupChatRepo {
	return &fakeGroupChatRepo{messages: make(map[string]*entity.GroupMessage)}
}

func (r *fakeGroupChatRepo) CreateMessage(ctx context.Context, message *entity.GroupMessage) error {
	r.nextID++
	message.ID = fmt.Sprintf("gm-%d", r.nextID)
	message.CreatedAt = time.Now()
	r.messages[message.ID] = message
	r.order = append(r.order, message.ID)
	return nil
}

func (r *fakeGroupChatRepo) GetMessageByID(ctx context.Context, id string) (*entity.GroupMessage, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	return message, nil
}

func (r *fakeGroupChatRepo) ListMessages(ctx context.Context, limit, offset int) ([]*entity.GroupMessage, int64, error) {
	var messages []*entity.GroupMessage
	for _, id := range r.order {
		messages = append(messages, r.messages[id])
	}
	return messages, int64(len(messages)), nil
}
