package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/mamadbah2/shoestock/internal/config"
	"github.com/mamadbah2/shoestock/internal/console"
	"github.com/mamadbah2/shoestock/internal/repository/textfile"
	commandsvc "github.com/mamadbah2/shoestock/internal/service/commands"
	"github.com/mamadbah2/shoestock/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	fileRepo := textfile.NewFileRepository(cfg.Inventory.FilePath, baseLogger.Named("repo.textfile"))
	term := console.New(os.Stdin, os.Stdout)
	dispatcher := commandsvc.NewDispatcher(fileRepo, term, baseLogger.Named("svc.commands"))

	baseLogger.Debug("menu starting", zap.String("inventory_file", fileRepo.Path()))
	if err := dispatcher.Run(context.Background()); err != nil {
		baseLogger.Fatal("menu loop stopped", zap.Error(err))
	}
}
