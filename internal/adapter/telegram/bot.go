package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ticketboom/internal/usecase"
	apperrors "ticketboom/pkg/errors"
	"ticketboom/pkg/logger"
)

const genericFailure = "❌ Something went wrong, try again."

// Bot is the administrator-facing leg of the premium workflow: a long-poll
// loop over commands, receipt photos and decision button presses. Updates are
// handled one at a time.
type Bot struct {
	api     *tgbotapi.BotAPI
	premium *usecase.PremiumUseCase
}

func NewBot(api *tgbotapi.BotAPI, premium *usecase.PremiumUseCase) *Bot {
	return &Bot{
		api:     api,
		premium: premium,
	}
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = 30

	updates := b.api.GetUpdatesChan(config)
	logger.Info("Bot @%s polling for updates", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleDecision(ctx, update.CallbackQuery)
		return
	}

	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case len(msg.Photo) > 0:
		b.handlePhoto(ctx, msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, fmt.Sprintf(
			"Hi, %s!\nTo make a ticket premium, send a command like:\n\n/premium TicketID",
			msg.From.FirstName))

	case "premium":
		b.handlePremiumCommand(ctx, msg)
	}
}

func (b *Bot) handlePremiumCommand(ctx context.Context, msg *tgbotapi.Message) {
	ticketID := strings.TrimSpace(msg.CommandArguments())
	if ticketID == "" {
		b.reply(msg.Chat.ID, "Usage: /premium TicketID")
		return
	}

	ticket, err := b.premium.RequestViaBot(ctx, ticketID, msg.Chat.ID)
	if err != nil {
		switch {
		case apperrors.Is(err, "NOT_FOUND"):
			b.reply(msg.Chat.ID, "❌ No ticket with that ID was found.")
		case errors.Is(err, usecase.ErrAlreadyPremium):
			b.reply(msg.Chat.ID, "🌟 This ticket is already premium.")
		case errors.Is(err, usecase.ErrRequestPending):
			b.reply(msg.Chat.ID, "⏳ You already have a premium request pending. Send its receipt first.")
		default:
			logger.Error("Premium request for %s failed: %v", ticketID, err)
			b.reply(msg.Chat.ID, genericFailure)
		}
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("Send a photo of the payment receipt for ticket ID: %s", ticket.ID))
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	// Telegram attaches several resolutions; the last is the largest.
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	fromName := msg.From.FirstName
	if msg.From.UserName != "" {
		fromName = "@" + msg.From.UserName
	}

	if _, err := b.premium.HandleReceipt(ctx, msg.Chat.ID, fileID, fromName); err != nil {
		if apperrors.Is(err, "NOT_FOUND") {
			b.reply(msg.Chat.ID, "❌ You have no tickets awaiting premium.")
			return
		}
		logger.Error("Receipt handling for chat %d failed: %v", msg.Chat.ID, err)
		b.reply(msg.Chat.ID, genericFailure)
	}
}

func (b *Bot) handleDecision(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Dismiss the button spinner regardless of the outcome.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logger.Warn("Failed to answer callback %s: %v", query.ID, err)
	}

	if query.Message == nil {
		return
	}
	actorChat := query.Message.Chat.ID

	reply, err := b.premium.Decide(ctx, query.Data, actorChat)
	if err != nil {
		switch {
		case apperrors.Is(err, "FORBIDDEN"):
			logger.Warn("Decision from non-approver chat %d ignored", actorChat)
		case apperrors.Is(err, "NOT_FOUND"):
			b.reply(actorChat, "❌ Ticket no longer exists.")
		default:
			logger.Error("Decision handling failed: %v", err)
			b.reply(actorChat, genericFailure)
		}
		return
	}

	b.reply(actorChat, reply)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logger.Error("Failed to send message to chat %d: %v", chatID, err)
	}
}
