package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 3418 {
		t.Errorf("Expected default port 3418, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "huddle.db" {
		t.Errorf("Expected default sqlite file, got %s", cfg.DatabaseURL)
	}
	if cfg.ReplyTimeout != 120*time.Second {
		t.Errorf("Expected default reply timeout 120s, got %s", cfg.ReplyTimeout)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://localhost/huddle")
	os.Setenv("REPLY_TIMEOUT", "60")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://localhost/huddle" {
		t.Errorf("Expected env database URL, got %s", cfg.DatabaseURL)
	}
	if cfg.ReplyTimeout != 60*time.Second {
		t.Errorf("Expected reply timeout 60s, got %s", cfg.ReplyTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("DATABASE_URL", "env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "9000", "-d", "flag.db"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected flag port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "flag.db" {
		t.Errorf("Expected flag database URL, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_InvalidType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("Expected error when postgres has no URL")
	}
}

func TestParseFlags_InvalidEnvValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "not-a-number"},
		{"bad reply timeout", "REPLY_TIMEOUT", "soon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv(tc.key, tc.value)
			defer os.Clearenv()

			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("Expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
