// Package bot receives LINE webhook callbacks and replies with the
// pipeline's answer. Signature verification and event decoding are
// delegated to the official SDK; the pipeline only ever sees the
// message text.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"matomeru/internal/pipeline"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

type Bot struct {
	api           *messaging_api.MessagingApiAPI
	pipeline      *pipeline.Pipeline
	channelSecret string
	log           *slog.Logger
}

func New(
	channelSecret string,
	channelToken string,
	p *pipeline.Pipeline,
	log *slog.Logger,
) (*Bot, error) {
	channelSecret = strings.TrimSpace(channelSecret)
	channelToken = strings.TrimSpace(channelToken)

	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:           api,
		pipeline:      p,
		channelSecret: channelSecret,
		log:           log,
	}, nil
}

// Callback handles one webhook delivery. The acknowledgement is a
// fixed 200 "OK" no matter how the replies themselves fare; only a
// bad signature or an undecodable body is rejected.
func (b *Bot) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	cb, err := webhook.ParseRequest(b.channelSecret, c.Request())
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			b.log.WarnContext(ctx, "Invalid webhook signature",
				"error", err)

			return c.String(http.StatusBadRequest, "Bad Request")
		}

		b.log.ErrorContext(ctx, "Failed to parse webhook request",
			"error", err)

		return c.String(http.StatusBadRequest, "Bad Request")
	}

	for _, event := range cb.Events {
		b.handleEvent(ctx, event)
	}

	return c.String(http.StatusOK, "OK")
}

func (b *Bot) handleEvent(ctx context.Context, event webhook.EventInterface) {
	messageEvent, ok := event.(webhook.MessageEvent)
	if !ok {
		return
	}

	textMessage, ok := messageEvent.Message.(webhook.TextMessageContent)
	if !ok {
		return
	}

	answer := b.pipeline.Process(ctx, textMessage.Text)

	if err := b.reply(messageEvent.ReplyToken, answer); err != nil {
		b.log.ErrorContext(ctx, "Failed to send reply",
			"error", err)
	}
}

func (b *Bot) reply(replyToken string, text string) error {
	_, err := b.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})

	return err
}
