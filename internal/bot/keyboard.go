package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startButtonText = "Старт"

// webAppInfo и inline-кнопки с web_app описаны вручную,
// в tgbotapi v5.5.1 этих полей Bot API 6.0 нет
type webAppInfo struct {
	URL string `json:"url"`
}

type inlineWebAppButton struct {
	Text   string      `json:"text"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

type inlineWebAppKeyboard struct {
	InlineKeyboard [][]inlineWebAppButton `json:"inline_keyboard"`
}

func (b *Bot) getMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(startButtonText),
		),
	)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false
	return keyboard
}

func (b *Bot) getShopKeyboard() inlineWebAppKeyboard {
	return inlineWebAppKeyboard{
		InlineKeyboard: [][]inlineWebAppButton{
			{{Text: "Открыть магазин", WebApp: &webAppInfo{URL: b.webAppURL}}},
		},
	}
}
