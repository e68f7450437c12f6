package bot

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	mainMenuText     = "Главное меню"
	welcomeText      = "Добро пожаловать в VapeHouse 🔥"
	orderMissingText = "Не удалось прочитать данные заказа 😔"
	orderFailedText  = "Произошла ошибка при обработке заказа 😔"
)

type webAppData struct {
	Data       string `json:"data"`
	ButtonText string `json:"button_text"`
}

// webAppEnvelope вытаскивает message.web_app_data из исходного обновления
type webAppEnvelope struct {
	Message *struct {
		WebAppData *webAppData `json:"web_app_data"`
	} `json:"message"`
}

func (b *Bot) handleUpdate(raw []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(raw, &update); err != nil {
		return err
	}
	message := update.Message
	if message == nil || message.Chat == nil {
		return nil
	}

	var envelope webAppEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	if envelope.Message != nil && envelope.Message.WebAppData != nil {
		return b.handleWebAppData(message, envelope.Message.WebAppData)
	}

	if message.IsCommand() {
		return b.handleCommand(message)
	}

	if message.Text == startButtonText {
		return b.handleStart(message)
	}

	return nil
}

func (b *Bot) handleCommand(message *tgbotapi.Message) error {
	switch message.Command() {
	case "start":
		return b.handleStart(message)
	}
	return nil
}

// handleStart показывает клавиатуру с кнопкой "Старт" и кнопку открытия магазина
func (b *Bot) handleStart(message *tgbotapi.Message) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, mainMenuText)
	msg.ReplyMarkup = b.getMainKeyboard()
	if err := b.send(msg); err != nil {
		return err
	}

	msg = tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = b.getShopKeyboard()
	return b.send(msg)
}

// handleWebAppData отвечает сводкой по заказу из Mini App.
// Ошибки разбора не уходят в Telegram, пользователь получает текст с ошибкой.
func (b *Bot) handleWebAppData(message *tgbotapi.Message, data *webAppData) error {
	if data.Data == "" {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, orderMissingText))
	}

	order, err := ParseOrder(data.Data)
	if err != nil {
		b.log.Errorw("failed to parse web_app_data", "chat_id", message.Chat.ID, "error", err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, orderFailedText))
	}

	order.GenerateRef()
	b.log.Infow("order received",
		"ref", order.Ref,
		"chat_id", message.Chat.ID,
		"items", len(order.Items),
		"total", order.Total.Or(0),
	)

	return b.send(tgbotapi.NewMessage(message.Chat.ID, FormatOrder(order)))
}
