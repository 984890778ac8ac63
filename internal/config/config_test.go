package config

import (
	"os"
	"testing"
	"time"
)

var configEnvVars = []string{
	"PORT",
	"ENVIRONMENT",
	"APP_PROFILE",
	"INDEX_MESSAGE",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"SHUTDOWN_TIMEOUT",
	"MAX_BODY_BYTES",
}

// clearConfigEnv unsets the config variables and restores them after the test
func clearConfigEnv(t *testing.T) {
	t.Helper()

	originalEnv := make(map[string]string)
	for _, key := range configEnvVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	t.Cleanup(func() {
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				if config.Port != "5000" {
					t.Errorf("Expected default port 5000, got %s", config.Port)
				}
				if config.Profile != ProfileLocal {
					t.Errorf("Expected default profile %s, got %s", ProfileLocal, config.Profile)
				}
				if config.Log.Format != "text" {
					t.Errorf("Expected default log format text, got %s", config.Log.Format)
				}
				if config.ShutdownTimeout != 30*time.Second {
					t.Errorf("Expected default shutdown timeout 30s, got %v", config.ShutdownTimeout)
				}
				if config.MaxBodyBytes != 1<<20 {
					t.Errorf("Expected default max body 1MiB, got %d", config.MaxBodyBytes)
				}
				if config.RateLimit.Burst != 100 {
					t.Errorf("Expected default burst 100, got %d", config.RateLimit.Burst)
				}
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":             "8080",
				"ENVIRONMENT":      "production",
				"APP_PROFILE":      "alb-cluster",
				"LOG_LEVEL":        "debug",
				"LOG_FORMAT":       "json",
				"RATE_LIMIT_RPS":   "2.5",
				"SHUTDOWN_TIMEOUT": "5s",
			},
			check: func(t *testing.T, config *Config) {
				if config.Port != "8080" {
					t.Errorf("Expected port 8080, got %s", config.Port)
				}
				if !config.IsProduction() {
					t.Error("Expected production environment")
				}
				if config.Profile != ProfileALBCluster {
					t.Errorf("Expected profile alb-cluster, got %s", config.Profile)
				}
				if config.RateLimit.RequestsPerSecond != 2.5 {
					t.Errorf("Expected 2.5 rps, got %f", config.RateLimit.RequestsPerSecond)
				}
				if config.ShutdownTimeout != 5*time.Second {
					t.Errorf("Expected shutdown timeout 5s, got %v", config.ShutdownTimeout)
				}
			},
		},
		{
			name:    "unknown profile",
			envVars: map[string]string{"APP_PROFILE": "mainframe"},
			wantErr: true,
		},
		{
			name:    "non numeric port",
			envVars: map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "unknown log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "zero shutdown timeout",
			envVars: map[string]string{"SHUTDOWN_TIMEOUT": "0s"},
			wantErr: true,
		},
		{
			name:    "negative shutdown timeout",
			envVars: map[string]string{"SHUTDOWN_TIMEOUT": "-5s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			config, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && config != nil {
				tt.check(t, config)
			}
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	base := func() *Config {
		return &Config{Environment: "development", Port: "5000", Profile: ProfileLocal, Log: LogConfig{Level: "info", Format: "text"}}
	}

	notLambda := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: false})
	if notLambda.Log.Format != "text" {
		t.Errorf("Expected text format outside Lambda, got %s", notLambda.Log.Format)
	}

	inLambda := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: true, FunctionName: "echo"})
	if inLambda.Log.Format != "json" {
		t.Errorf("Expected json format in Lambda, got %s", inLambda.Log.Format)
	}
	if inLambda.IndexMessage != "Hello from echo!" {
		t.Errorf("Unexpected index message %q", inLambda.IndexMessage)
	}

	if got := AdaptConfigForServerless(base(), nil); got.Log.Format != "text" {
		t.Errorf("Expected nil serverless config to leave format alone, got %s", got.Log.Format)
	}
}

func TestDetectServerless(t *testing.T) {
	original := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	defer os.Setenv("AWS_LAMBDA_FUNCTION_NAME", original)

	os.Setenv("AWS_LAMBDA_FUNCTION_NAME", "hello")
	if sc := DetectServerless(); !sc.IsLambda || sc.FunctionName != "hello" {
		t.Errorf("Expected Lambda detection, got %+v", sc)
	}

	os.Unsetenv("AWS_LAMBDA_FUNCTION_NAME")
	if sc := DetectServerless(); sc.IsLambda {
		t.Errorf("Expected no Lambda detection, got %+v", sc)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	os.Setenv("DEMO_TEST_INT", "42")
	os.Setenv("DEMO_TEST_BOOL", "true")
	defer os.Unsetenv("DEMO_TEST_INT")
	defer os.Unsetenv("DEMO_TEST_BOOL")

	if got := GetEnvAsInt("DEMO_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvAsInt = %d, want 42", got)
	}
	if got := GetEnvAsInt("DEMO_TEST_MISSING", 7); got != 7 {
		t.Errorf("GetEnvAsInt fallback = %d, want 7", got)
	}
	if got := GetEnvAsBool("DEMO_TEST_BOOL", false); !got {
		t.Error("GetEnvAsBool = false, want true")
	}
	if got := GetEnv("DEMO_TEST_MISSING", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q, want x", got)
	}
}
