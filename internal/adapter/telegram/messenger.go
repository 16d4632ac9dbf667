package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger implements usecase.BotMessenger on top of the Telegram Bot API.
type Messenger struct {
	api *tgbotapi.BotAPI
}

func NewMessenger(api *tgbotapi.BotAPI) *Messenger {
	return &Messenger{
		api: api,
	}
}

func (m *Messenger) SendText(chatID int64, text string) error {
	_, err := m.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendReceipt relays a receipt photo (by Telegram file id, never downloaded)
// with the approve/reject controls attached.
func (m *Messenger) SendReceipt(chatID int64, photoFileID, caption, approveToken, rejectToken string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(photoFileID))
	photo.Caption = caption
	photo.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", approveToken),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject", rejectToken),
		),
	)

	_, err := m.api.Send(photo)
	return err
}
