package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the process-wide logger. Development gets human-readable
// text output, everything else structured JSON.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	log = slog.New(handler)
}

func Info(msg string, args ...interface{}) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...interface{}) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...interface{}) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...interface{}) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error or value as the trailing
// argument instead of a key/value pair.
func normalize(args []interface{}) []interface{} {
	if len(args)%2 == 0 {
		return args
	}

	head := args[: len(args)-1 : len(args)-1]
	last := args[len(args)-1]
	if err, ok := last.(error); ok {
		return append(head, slog.Any("error", err))
	}

	return append(head, slog.Any("detail", last))
}
