package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("Console development", func(t *testing.T) {
		l := Init(ZapConfig{Level: "debug", Mode: "debug", Encoding: EncodingConsole, ColorEnabled: true})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Debugf(ctx, "debug %d", 1)
		l.Info(ctx, "info")
	})

	t.Run("JSON production", func(t *testing.T) {
		l := Init(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON})
		l.Warnf(ctx, "warn %s", "x")
	})

	t.Run("Nop", func(t *testing.T) {
		NewNop().Errorf(ctx, "nothing %v", nil)
	})
}
