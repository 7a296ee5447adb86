package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/slot"
	pkgLog "daily-planner/pkg/log"
	pkgTelegram "daily-planner/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	uc          slot.UseCase
	bot         *pkgTelegram.Bot
	secretToken string
	now         func() time.Time
}

// New creates a new Telegram delivery handler. When secretToken is set, webhook calls
// without the matching header are rejected.
func New(l pkgLog.Logger, uc slot.UseCase, bot *pkgTelegram.Bot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
		now:         time.Now,
	}
}
