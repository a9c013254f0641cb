package api

import (
	"net/http"

	"go.uber.org/zap"

	"geoconv-service/internal/api/handlers"
	"geoconv-service/internal/ports"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Converter    handlers.Converter
	History      ports.ConversionLog // nil disables /history
	HistoryLimit int
	Engine       string
	Logger       *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	convertHandler := &handlers.ConvertHandler{Converter: deps.Converter, Logger: logger}
	historyHandler := &handlers.HistoryHandler{
		Log:          deps.History,
		DefaultLimit: deps.HistoryLimit,
		Logger:       logger,
	}

	mux.HandleFunc("/health", handlers.Health(deps.Engine))
	mux.HandleFunc("/convert", convertHandler.Convert)
	mux.HandleFunc("/ws", convertHandler.Live)
	mux.HandleFunc("/history", historyHandler.List)

	return requestIDMiddleware(loggingMiddleware(logger, recoverMiddleware(logger, mux)))
}
