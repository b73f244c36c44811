package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("read config: %v", err)
	}
	return v
}

func TestFromViper_Providers(t *testing.T) {
	t.Setenv("TEST_QWEN_KEY", "qwen-secret")

	v := newViper(t, `
http_server:
  port: 9090
session:
  ttl: 5m
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: gem-key
      model: gemini-2.5-pro
    - name: qwen
      enabled: true
      priority: 2
      api_key: ${TEST_QWEN_KEY}
      model: qwen-plus
`)

	cfg, err := fromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Session.TTL != 5*time.Minute {
		t.Errorf("expected ttl 5m, got %v", cfg.Session.TTL)
	}
	if cfg.Session.MaxSessions != 1000 {
		t.Errorf("expected default max sessions 1000, got %d", cfg.Session.MaxSessions)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[1].APIKey != "qwen-secret" {
		t.Errorf("expected expanded api key, got %q", cfg.LLM.Providers[1].APIKey)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMin != 30 {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestFromViper_GeminiKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := fromViper(newViper(t, `environment:
  name: test
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(cfg.LLM.Providers))
	}
	p := cfg.LLM.Providers[0]
	if p.Name != "gemini" || p.Model != DefaultGeminiModel || p.APIKey != "env-key" {
		t.Errorf("unexpected provider: %+v", p)
	}
}

func TestFromViper_NoProviders(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := fromViper(newViper(t, `environment:
  name: test
`)); err == nil {
		t.Fatal("expected error without providers")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
			}},
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
				{Name: "qwen", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: false, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLLMConfig() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
