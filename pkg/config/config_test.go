package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	if GetInt("server.port") != 8080 {
		t.Errorf("Expected default server.port to be 8080, got %d", GetInt("server.port"))
	}

	if GetString("database.path") != "./data/flowiq.db" {
		t.Errorf("Expected default database path, got %s", GetString("database.path"))
	}

	if GetString("ingest.user_agent") != "FlowIQIngestAPI/1.0" {
		t.Errorf("Expected default user agent, got %s", GetString("ingest.user_agent"))
	}

	if !GetBool("security.enable_cors") {
		t.Error("Expected CORS to be enabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name: "valid defaults",
			setup: func() {
				setDefaults()
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				setDefaults()
				viper.Set("server.port", -1)
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			setup: func() {
				setDefaults()
				viper.Set("database.path", "")
			},
			wantErr: true,
		},
		{
			name: "placeholder transcription key rejected in production",
			setup: func() {
				setDefaults()
				viper.Set("environment", "production")
				viper.Set("transcription.api_key", "changeme")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			tt.setup()

			err := validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "./test.db"},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}

	// Fetch cap auto-corrects instead of erroring
	if cfg.Ingest.MaxAudioBytes <= 0 {
		t.Error("Expected MaxAudioBytes to be auto-corrected to a positive value")
	}

	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for invalid port")
	}
}
