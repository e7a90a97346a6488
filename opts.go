package embedfs

import "log/slog"

// DefaultMaxFiles is the default limit used when no PackWithMaxFiles option is set.
const DefaultMaxFiles = 200_000

// packConfig holds configuration for Pack and PackFS.
type packConfig struct {
	logger   *slog.Logger
	progress ProgressFunc
	maxFiles int
}

// PackOption configures Pack and PackFS.
type PackOption func(*packConfig)

// PackWithLogger sets the logger for pack operations.
// Header-level details are logged at debug level.
func PackWithLogger(logger *slog.Logger) PackOption {
	return func(cfg *packConfig) {
		cfg.logger = logger
	}
}

// PackWithProgress sets a callback receiving a StageWalking event before the
// tree is listed and a StagePacking event per file read.
func PackWithProgress(fn ProgressFunc) PackOption {
	return func(cfg *packConfig) {
		cfg.progress = fn
	}
}

// PackWithMaxFiles limits the number of files included in the container.
// Zero uses DefaultMaxFiles. Negative means no limit.
func PackWithMaxFiles(n int) PackOption {
	return func(cfg *packConfig) {
		cfg.maxFiles = n
	}
}

// unpackConfig holds configuration for Unpack.
type unpackConfig struct {
	logger   *slog.Logger
	progress ProgressFunc
}

// UnpackOption configures Unpack and UnpackFile.
type UnpackOption func(*unpackConfig)

// UnpackWithLogger sets the logger for unpack operations.
func UnpackWithLogger(logger *slog.Logger) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.logger = logger
	}
}

// UnpackWithProgress sets a callback receiving an event per extracted file.
func UnpackWithProgress(fn ProgressFunc) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.progress = fn
	}
}

// orDiscard returns logger, falling back to a discard logger if nil.
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
