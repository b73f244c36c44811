package llmprovider_test

import (
	"errors"
	"testing"
	"time"

	"travel-planner/config"
	"travel-planner/pkg/llmprovider"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "q", Model: "qwen-plus", Timeout: "30s"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g", Model: "gemini-2.5-pro"},
			{Name: "gemini", Enabled: false, Priority: 3, APIKey: "g", Model: "gemini-2.5-flash"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "gemini" || providers[0].Model() != "gemini-2.5-pro" {
		t.Errorf("Expected gemini first, got %s/%s", providers[0].Name(), providers[0].Model())
	}
	if providers[1].Name() != "qwen" {
		t.Errorf("Expected qwen second, got %s", providers[1].Name())
	}
}

func TestInitializeProviders_SkipsBroken(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "mystery", Enabled: true, Priority: 1, APIKey: "x", Model: "m"},
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-pro"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "gemini" {
		t.Errorf("Expected only gemini, got %d providers", len(providers))
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	if _, err := llmprovider.InitializeProviders(nil); err == nil {
		t.Error("Expected error for nil config")
	}

	_, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: false}},
	})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}},
	})
	if err == nil {
		t.Error("Expected error when every provider lacks an API key")
	}
}

func TestParseManagerConfig(t *testing.T) {
	got := llmprovider.ParseManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "not-a-duration",
	})

	if !got.FallbackEnabled || got.RetryAttempts != 3 {
		t.Errorf("unexpected flags: %+v", got)
	}
	if got.RetryDelay != 250*time.Millisecond {
		t.Errorf("Expected 250ms retry delay, got %v", got.RetryDelay)
	}
	if got.MaxTotalTimeout != 120*time.Second {
		t.Errorf("Expected default total timeout, got %v", got.MaxTotalTimeout)
	}
}
