package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/model"
	"daily-planner/internal/slot"
	pkgLog "daily-planner/pkg/log"
	pkgResponse "daily-planner/pkg/response"
	pkgTelegram "daily-planner/pkg/telegram"
)

// maxLines caps how many planner lines one message may schedule.
const maxLines = 20

const helpText = `Send one task per line, for example:
Gym @6am to 7am $High %Health #fitness
Call mom tomorrow @7pm %Family
Review budget on 15 Feb from 2pm to 3:30pm Q2

@<time> books 30 minutes, "from <time> to <time>" or "@<time> to <time>" books a range.
$critical|high|medium|low sets priority, %office|personal|family|travel|health|finance|general the category, #word adds a tag, Q1-Q4 the quadrant.

/today shows today's plan.`

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected webhook with bad secret from %s", c.ClientIP())
			pkgResponse.Forbidden(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestID(ctx))

	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := model.Scope{Source: model.SourceTelegram}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	switch command(text) {
	case "/start", "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpText)
	case "/today":
		return h.sendToday(ctx, sc, msg.Chat.ID)
	}

	lines := splitLines(text)
	var reply strings.Builder
	if len(lines) > maxLines {
		fmt.Fprintf(&reply, "Only the first %d lines were read.\n\n", maxLines)
		lines = lines[:maxLines]
	}

	for _, line := range lines {
		out, err := h.uc.Create(ctx, sc, slot.CreateInput{RawText: line})
		if err != nil {
			h.l.Infof(ctx, "telegram handler: line %q rejected: %v", line, err)
			fmt.Fprintf(&reply, "❌ %s\n   %s\n", line, errorMessage(err))
			continue
		}
		reply.WriteString(formatCreated(out))
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, strings.TrimSpace(reply.String()))
}

func (h *handler) sendToday(ctx context.Context, sc model.Scope, chatID int64) error {
	view, err := h.uc.Day(ctx, sc, h.now())
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Day: %v", err)
		return h.bot.SendMessage(ctx, chatID, "Could not load today's plan, please try again.")
	}
	return h.bot.SendMessage(ctx, chatID, formatDay(view))
}

// command returns the first word of text with any "@botname" suffix removed,
// the form Telegram uses for commands in group chats.
func command(text string) string {
	name, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return name
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
