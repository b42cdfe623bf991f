package log

import "go.uber.org/zap"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// OutputPath is a file path or "stdout"/"stderr". Empty means stdout.
	OutputPath string
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type requestIDKey struct{}
