package main

import (
	"context"
	"encoding/json"

	"github.com/ivanoskov/shop_bot/internal/bot"
	"github.com/ivanoskov/shop_bot/internal/config"
	"github.com/ivanoskov/shop_bot/internal/logger"
)

// Request структура входящего запроса от API Gateway
type Request struct {
	Body string `json:"body"`
}

// Response структура ответа для API Gateway
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// Handler обрабатывает одно webhook-обновление от Telegram
func Handler(ctx context.Context, request Request) (*Response, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errorResponse(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return errorResponse(err)
	}
	defer log.Sync()

	b, err := bot.NewBot(cfg.TelegramToken, cfg.WebAppURL, log)
	if err != nil {
		return errorResponse(err)
	}

	// Ошибки обработки только логируем, Telegram всегда получает 200
	if err := b.HandleWebhook([]byte(request.Body)); err != nil {
		log.Errorw("failed to handle update", "error", err)
	}

	return &Response{
		StatusCode: 200,
		Body:       `{"ok":true}`,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func errorResponse(err error) (*Response, error) {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return &Response{
		StatusCode: 500,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Точка входа для локального тестирования
}
