package usecase

import (
	"context"
	"fmt"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
	"ticketboom/pkg/errors"
	"ticketboom/pkg/logger"
)

var (
	// ErrAlreadyPremium rejects a premium request for a listing that has
	// already been approved.
	ErrAlreadyPremium = errors.Conflict("Ticket is already premium")
	// ErrRequestPending enforces the one-open-request-per-chat invariant.
	ErrRequestPending = errors.Conflict("Another premium request is already pending for this chat")
)

// BotMessenger is the outbound leg of the bot: plain texts and the
// receipt-photo relay with its approve/reject buttons. The Telegram adapter
// implements it; tests substitute a recorder.
type BotMessenger interface {
	SendText(chatID int64, text string) error
	SendReceipt(chatID int64, photoFileID, caption, approveToken, rejectToken string) error
}

// PremiumUseCase coordinates the premium-approval workflow: an owner opens a
// request (web or bot), sends a payment receipt photo through the bot, and a
// configured approver settles it. The listing document is the only persisted
// state; the approver-facing "awaiting decision" state lives in the relayed
// message alone.
type PremiumUseCase struct {
	ticketRepo  repository.TicketRepository
	messenger   BotMessenger
	approvers   []int64
	botUsername string
}

func NewPremiumUseCase(ticketRepo repository.TicketRepository, messenger BotMessenger, approvers []int64, botUsername string) *PremiumUseCase {
	return &PremiumUseCase{
		ticketRepo:  ticketRepo,
		messenger:   messenger,
		approvers:   approvers,
		botUsername: botUsername,
	}
}

func (uc *PremiumUseCase) BotUsername() string {
	return uc.botUsername
}

func (uc *PremiumUseCase) isApprover(chatID int64) bool {
	for _, id := range uc.approvers {
		if id == chatID {
			return true
		}
	}
	return false
}

// RequestViaBot opens a premium request from the /premium command, binding
// the requester's chat. A chat may hold at most one open request: repeating
// the command for the same ticket re-enters the pending state, asking for a
// different ticket while one is pending is refused.
func (uc *PremiumUseCase) RequestViaBot(ctx context.Context, ticketID string, chatID int64) (*entity.Ticket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.Premium {
		return nil, ErrAlreadyPremium
	}

	pending, err := uc.ticketRepo.FindPendingByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	for _, p := range pending {
		if p.ID != ticketID {
			return nil, ErrRequestPending
		}
	}

	if err := uc.ticketRepo.SetPremiumPending(ctx, ticketID, chatID); err != nil {
		return nil, err
	}

	ticket.PremiumPending = true
	ticket.PremiumUserChat = chatID
	return ticket, nil
}

// RequestViaWeb opens a premium request from the owner's ticket page. No chat
// is bound yet; the owner finishes the flow by messaging the bot.
func (uc *PremiumUseCase) RequestViaWeb(ctx context.Context, ticketID, ownerEmail string) (*entity.Ticket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.UserEmail != ownerEmail {
		return nil, errors.Forbidden("You don't have permission to request premium for this ticket", nil)
	}
	if ticket.Premium {
		return nil, ErrAlreadyPremium
	}

	if err := uc.ticketRepo.SetPremiumPending(ctx, ticketID, 0); err != nil {
		return nil, err
	}

	ticket.PremiumPending = true
	return ticket, nil
}

// HandleReceipt correlates an incoming receipt photo with the chat's open
// request and relays it to every approver with approve/reject buttons. The
// listing document is not touched here: until a decision lands, the request
// stays pending.
func (uc *PremiumUseCase) HandleReceipt(ctx context.Context, chatID int64, photoFileID, fromName string) (*entity.Ticket, error) {
	pending, err := uc.ticketRepo.FindPendingByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, errors.NotFound("Pending premium request", nil)
	}
	if len(pending) > 1 {
		// The one-request-per-chat invariant should rule this out; take the
		// first match like the store query would.
		logger.Warn("Chat %d has %d pending premium requests", chatID, len(pending))
	}
	ticket := pending[0]

	if err := uc.messenger.SendText(chatID, "✅ Receipt received, wait for the administrator's confirmation."); err != nil {
		logger.Error("Failed to acknowledge receipt to chat %d: %v", chatID, err)
	}

	caption := fmt.Sprintf("Premium request\nTicketID: %s\nEvent: %s\nFrom: %s", ticket.ID, ticket.ConcertName, fromName)
	approve := entity.PremiumDecision{Verdict: entity.VerdictApprove, TicketID: ticket.ID, Chat: chatID}.Encode()
	reject := entity.PremiumDecision{Verdict: entity.VerdictReject, TicketID: ticket.ID, Chat: chatID}.Encode()

	for _, approver := range uc.approvers {
		if err := uc.messenger.SendReceipt(approver, photoFileID, caption, approve, reject); err != nil {
			logger.Error("Failed to relay receipt to approver %d: %v", approver, err)
		}
	}

	return ticket, nil
}

// Decide settles a request from an approver's button press. Returns the text
// to show the acting approver.
func (uc *PremiumUseCase) Decide(ctx context.Context, rawToken string, actorChat int64) (string, error) {
	if !uc.isApprover(actorChat) {
		return "", errors.Forbidden("Only a configured approver can settle premium requests", nil)
	}

	decision, err := entity.DecodePremiumDecision(rawToken)
	if err != nil {
		return "", errors.BadRequest("Malformed decision token", err)
	}

	switch decision.Verdict {
	case entity.VerdictApprove:
		if err := uc.ticketRepo.ApprovePremiumIfPending(ctx, decision.TicketID); err != nil {
			// The request was settled by a rejection before this press
			// landed; tell the approver instead of promoting the listing.
			if errors.Is(err, "CONFLICT") {
				return "⌛ This request is no longer pending.", nil
			}
			return "", err
		}
		if decision.Chat != 0 {
			if err := uc.messenger.SendText(decision.Chat, "🌟 Your ticket is premium now!"); err != nil {
				logger.Error("Failed to notify requester %d: %v", decision.Chat, err)
			}
		}
		return "✅ Premium confirmed.", nil

	case entity.VerdictReject:
		if err := uc.ticketRepo.ClearPremiumPending(ctx, decision.TicketID); err != nil {
			return "", err
		}
		if decision.Chat != 0 {
			if err := uc.messenger.SendText(decision.Chat, "❌ Your ticket did not pass review."); err != nil {
				logger.Error("Failed to notify requester %d: %v", decision.Chat, err)
			}
		}
		return "Ticket rejected.", nil
	}

	return "", errors.BadRequest("Malformed decision token", nil)
}
