package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	pollTimeout = 60
	retryDelay  = 3 * time.Second
)

// telegramAPI часть tgbotapi.BotAPI, которой пользуется бот
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

// Bot не хранит состояние между сообщениями, каждое обновление обрабатывается отдельно
type Bot struct {
	api       telegramAPI
	webAppURL string
	log       *zap.SugaredLogger
}

func NewBot(token, webAppURL string, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	return newBot(api, webAppURL, log), nil
}

func newBot(api telegramAPI, webAppURL string, log *zap.SugaredLogger) *Bot {
	return &Bot{
		api:       api,
		webAppURL: webAppURL,
		log:       log,
	}
}

// Start запускает бота в режиме long polling и работает до отмены ctx.
// getUpdates вызывается напрямую: web_app_data нет в типах tgbotapi v5.5.1,
// поэтому обработчику нужен исходный JSON обновления.
func (b *Bot) Start(ctx context.Context) error {
	offset := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := b.poll(ctx, offset)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			b.log.Errorw("failed to get updates", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			continue
		}

		for _, raw := range updates {
			var head struct {
				UpdateID int `json:"update_id"`
			}
			if err := json.Unmarshal(raw, &head); err == nil && head.UpdateID >= offset {
				offset = head.UpdateID + 1
			}

			// Логируем ошибку, но продолжаем работу
			if err := b.handleUpdate(raw); err != nil {
				b.log.Errorw("error handling update", "update_id", head.UpdateID, "error", err)
			}
		}
	}
}

// poll ждет ответа getUpdates, но возвращается сразу после отмены ctx.
// Зависший запрос дорабатывает в фоне, его результат отбрасывается.
func (b *Bot) poll(ctx context.Context, offset int) ([]json.RawMessage, error) {
	type result struct {
		updates []json.RawMessage
		err     error
	}

	done := make(chan result, 1)
	go func() {
		updates, err := b.getUpdates(offset)
		done <- result{updates: updates, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.updates, res.err
	}
}

func (b *Bot) getUpdates(offset int) ([]json.RawMessage, error) {
	params := tgbotapi.Params{}
	params.AddNonZero("offset", offset)
	params.AddNonZero("timeout", pollTimeout)

	resp, err := b.api.MakeRequest("getUpdates", params)
	if err != nil {
		return nil, err
	}

	var updates []json.RawMessage
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return nil, fmt.Errorf("failed to parse updates: %w", err)
	}
	return updates, nil
}

// HandleWebhook - точка входа для обработки входящих webhook-обновлений
func (b *Bot) HandleWebhook(body []byte) error {
	return b.handleUpdate(body)
}

func (b *Bot) send(c tgbotapi.Chattable) error {
	if _, err := b.api.Send(c); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
