package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init inicializa el logger global.
// env: "development" o "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if env == "development" {
		// Development: formato de texto legible
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON para parseo
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger devuelve el logger global
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

// Debug registra un mensaje debug
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info registra un mensaje info
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn registra un warning
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error registra un error
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal registra un error fatal y termina el proceso
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With crea un logger con campos adicionales
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
