package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when no env vars
// are present.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("PROVIDER_BASE_URL")
	_ = os.Unsetenv("PROVIDER_TIMEOUT_SECONDS")
	_ = os.Unsetenv("PROVIDER_MAX_PARALLEL")
	_ = os.Unsetenv("CACHE_TTL_SECONDS")
	_ = os.Unsetenv("CACHE_MAX_ENTRIES")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Provider.BaseURL != "https://query1.finance.yahoo.com" {
		t.Fatalf("unexpected provider base URL: %q", AppConfig.Provider.BaseURL)
	}
	if AppConfig.Provider.Timeout != 30*time.Second || AppConfig.Provider.MaxParallel != 4 {
		t.Fatalf("unexpected provider defaults: %+v", AppConfig.Provider)
	}
	if AppConfig.Cache.TTL != 30*time.Second || AppConfig.Cache.MaxEntries != 128 {
		t.Fatalf("unexpected cache defaults: %+v", AppConfig.Cache)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
