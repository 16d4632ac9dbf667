package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ticketboom/internal/domain/entity"
	"ticketboom/pkg/errors"
)

// In-memory stand-ins for the Firestore repositories. They keep the same
// contracts (merge-style updates, newest-first feeds, idempotent approve) so
// the use cases can be exercised without a live store.

type memTicketRepo struct {
	mu      sync.Mutex
	seq     int
	tickets map[string]*entity.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{tickets: make(map[string]*entity.Ticket)}
}

func (r *memTicketRepo) Create(ctx context.Context, ticket *entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if ticket.ID == "" {
		ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	}
	ticket.CreatedAt = time.Now()
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *memTicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, errors.NotFound("Ticket", nil)
	}
	clone := *ticket
	return &clone, nil
}

func (r *memTicketRepo) List(ctx context.Context) ([]*entity.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Ticket
	for _, ticket := range r.tickets {
		if ticket.Deleted {
			continue
		}
		clone := *ticket
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Premium != out[j].Premium {
			return out[i].Premium
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memTicketRepo) ListByOwner(ctx context.Context, email string) ([]*entity.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Ticket
	for _, ticket := range r.tickets {
		if ticket.UserEmail == email {
			clone := *ticket
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTicketRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return errors.NotFound("Ticket", nil)
	}
	for key, value := range fields {
		switch key {
		case "price":
			ticket.Price = value.(float64)
		case "contact":
			ticket.Contact = value.(string)
		}
	}
	return nil
}

func (r *memTicketRepo) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return errors.NotFound("Ticket", nil)
	}
	ticket.Deleted = true
	return nil
}

func (r *memTicketRepo) HardDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return errors.NotFound("Ticket", nil)
	}
	delete(r.tickets, id)
	return nil
}

func (r *memTicketRepo) SetPremiumPending(ctx context.Context, id string, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return errors.NotFound("Ticket", nil)
	}
	ticket.PremiumPending = true
	if chatID != 0 {
		ticket.PremiumUserChat = chatID
	}
	return nil
}

func (r *memTicketRepo) ClearPremiumPending(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return errors.NotFound("Ticket", nil)
	}
	ticket.PremiumPending = false
	ticket.PremiumUserChat = 0
	return nil
}

func (r *memTicketRepo) FindPendingByChat(ctx context.Context, chatID int64) ([]*entity.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Ticket
	for _, ticket := range r.tickets {
		if ticket.PremiumPending && ticket.PremiumUserChat == chatID {
			clone := *ticket
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memTicketRepo) ApprovePremium(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return errors.NotFound("Ticket", nil)
	}
	ticket.Premium = true
	ticket.PremiumPending = false
	ticket.PremiumUserChat = 0
	return nil
}

func (r *memTicketRepo) ApprovePremiumIfPending(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return errors.NotFound("Ticket", nil)
	}
	if ticket.Premium && !ticket.PremiumPending {
		return nil
	}
	if !ticket.PremiumPending {
		return errors.Conflict("Premium request is no longer pending")
	}
	ticket.Premium = true
	ticket.PremiumPending = false
	ticket.PremiumUserChat = 0
	return nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	seq      int
	comments map[string][]*entity.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string][]*entity.Comment)}
}

func (r *memCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	comment.ID = fmt.Sprintf("comment-%d", r.seq)
	comment.CreatedAt = time.Now()
	clone := *comment
	r.comments[comment.TicketID] = append(r.comments[comment.TicketID], &clone)
	return nil
}

func (r *memCommentRepo) ListByTicket(ctx context.Context, ticketID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Comment
	for _, comment := range r.comments[ticketID] {
		clone := *comment
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memCommentRepo) Subscribe(ctx context.Context, ticketID string, onChange func([]*entity.Comment)) (func(), error) {
	return func() {}, nil
}

type memNotificationRepo struct {
	mu            sync.Mutex
	seq           int
	notifications []*entity.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{}
}

func (r *memNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = fmt.Sprintf("notification-%d", r.seq)
	notification.CreatedAt = time.Now()
	clone := *notification
	// Newest-first, like the store query.
	r.notifications = append([]*entity.Notification{&clone}, r.notifications...)
	return nil
}

func (r *memNotificationRepo) List(ctx context.Context) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Notification, 0, len(r.notifications))
	for _, notification := range r.notifications {
		clone := *notification
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memNotificationRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications), nil
}

func (r *memNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.ID == id {
			notification.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *memNotificationRepo) Subscribe(ctx context.Context, onChange func([]*entity.Notification)) (func(), error) {
	return func() {}, nil
}

// recorderMessenger captures everything the premium workflow sends out.

type sentText struct {
	ChatID int64
	Text   string
}

type sentReceipt struct {
	ChatID       int64
	PhotoFileID  string
	Caption      string
	ApproveToken string
	RejectToken  string
}

type recorderMessenger struct {
	mu       sync.Mutex
	texts    []sentText
	receipts []sentReceipt
}

func (m *recorderMessenger) SendText(chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, sentText{ChatID: chatID, Text: text})
	return nil
}

func (m *recorderMessenger) SendReceipt(chatID int64, photoFileID, caption, approveToken, rejectToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts = append(m.receipts, sentReceipt{
		ChatID:       chatID,
		PhotoFileID:  photoFileID,
		Caption:      caption,
		ApproveToken: approveToken,
		RejectToken:  rejectToken,
	})
	return nil
}

func (m *recorderMessenger) textsTo(chatID int64) []sentText {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentText
	for _, t := range m.texts {
		if t.ChatID == chatID {
			out = append(out, t)
		}
	}
	return out
}

type fakeLinkGenerator struct {
	link string
	err  error
}

func (g *fakeLinkGenerator) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.link, nil
}

type fakeMailer struct {
	mu       sync.Mutex
	err      error
	to       []string
	subjects []string
	bodies   []string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to = append(m.to, to)
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, htmlBody)
	return nil
}
