package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"birthdayreminder/internal/config"
	"birthdayreminder/internal/logger"
	"birthdayreminder/internal/storage"
	"birthdayreminder/pkg/birthday"
	"birthdayreminder/pkg/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	days := flag.Int("days", cfg.RemindDaysAhead, "remind about birthdays due within this many days")
	dryRun := flag.Bool("dry-run", false, "print the digest instead of sending it")
	flag.Parse()

	logger := logger.Load(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	var notifier reminder.Notifier = reminder.WriterNotifier{W: os.Stdout}
	if !*dryRun && cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifier = reminder.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	} else if !*dryRun {
		logger.Warn("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set, printing digest")
	}

	job := reminder.NewJob(birthday.NewService(repo, logger), notifier, *days, logger)
	if _, err := job.Run(ctx); err != nil {
		logger.Error("send reminder", "error", err)
		closeRepo()
		os.Exit(1)
	}
}
