package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-planner/config"
	_ "daily-planner/docs" // Swagger docs
	"daily-planner/internal/httpserver"
	journalHTTP "daily-planner/internal/journal/delivery/http"
	journalRepo "daily-planner/internal/journal/repository/rest"
	journalUsecase "daily-planner/internal/journal/usecase"
	"daily-planner/internal/middleware"
	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	recurringHTTP "daily-planner/internal/recurring/delivery/http"
	recurringJob "daily-planner/internal/recurring/delivery/job"
	recurringRepo "daily-planner/internal/recurring/repository/rest"
	recurringUsecase "daily-planner/internal/recurring/usecase"
	slotHTTP "daily-planner/internal/slot/delivery/http"
	slotTelegram "daily-planner/internal/slot/delivery/telegram"
	slotRepo "daily-planner/internal/slot/repository/rest"
	slotUsecase "daily-planner/internal/slot/usecase"
	"daily-planner/internal/web"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/gcalendar"
	"daily-planner/pkg/log"
	"daily-planner/pkg/restdb"
	"daily-planner/pkg/telegram"
)

const readyTable = "planner_slots"

// @title       Daily Planner API
// @description Half-hour day planner fed by natural-language planner lines.
// @version     1.0
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: search ./config, ., /etc/app)")
	flag.Parse()

	// 1. Configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Row store: %s", cfg.Store.URL)

	// 3. Planner core
	dates, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Planner.Timezone, err)
	}
	parser := planner.New(dates, cfg.Planner.TimeMode)
	logger.Infof(ctx, "Planner timezone %s, time mode %s", cfg.Planner.Timezone, cfg.Planner.TimeMode)

	// 4. Repositories
	store := restdb.NewClient(cfg.Store.URL, cfg.Store.APIKey, cfg.Store.Schema)
	slotStore := slotRepo.New(store, dates.Location(), logger)
	journalStore := journalRepo.New(store, dates.Location(), logger)
	templateStore := recurringRepo.New(store, dates.Location(), logger)

	// 5. Google Calendar mirror (optional)
	var calendar slotUsecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClient(ctx, gcalendar.Options{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate the token file")
		} else {
			calendar = client
			logger.Info(ctx, "✅ Google Calendar mirror enabled")
		}
	}

	// 6. Use cases
	slotUC := slotUsecase.New(logger, slotStore, parser, dates, calendar, slotUsecase.Config{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		CacheSize:  cfg.Cache.Size,
		CacheTTL:   cfg.Cache.DayTTL,
		TimeModes: map[model.Source]planner.TimeMode{
			model.SourceTelegram: cfg.Telegram.TimeMode,
		},
	})
	journalUC := journalUsecase.New(logger, journalStore, cfg.Planner.Habits)
	recurringUC := recurringUsecase.New(logger, templateStore, slotUC, dates)

	// 7. Delivery
	mw, err := middleware.New(logger, middleware.Config{
		Password:        cfg.Session.Password,
		Secret:          cfg.Session.Secret,
		TTL:             cfg.Session.TTL,
		CookieName:      cfg.Session.CookieName,
		LoginRatePerMin: cfg.Session.LoginRatePerMin,
		Secure:          cfg.Session.Secure,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize middleware: %v", err)
	}

	pages, err := web.New(logger, slotUC, journalUC, dates, web.Config{ShowLogout: mw.Enabled()})
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse page templates: %v", err)
	}

	var telegramHandler slotTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = slotTelegram.New(logger, slotUC, bot, cfg.Telegram.WebhookSecret)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	if cfg.Recurring.AutoApply {
		go recurringJob.New(logger, recurringUC, dates, cfg.Recurring.Interval).Run(ctx)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ReadyCheck: func(ctx context.Context) error {
			return store.Ping(ctx, readyTable)
		},
		SlotHandler:      slotHTTP.New(logger, slotUC, dates),
		JournalHandler:   journalHTTP.New(logger, journalUC, dates),
		RecurringHandler: recurringHTTP.New(logger, recurringUC, dates),
		TelegramHandler:  telegramHandler,
		PageHandler:      pages,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// registerWebhook points Telegram at this server, discovering an ngrok tunnel when no URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: set telegram.webhook_url or telegram.ngrok_api")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
