package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		AppPort:        "8080",
		MySQLHost:      "localhost",
		MySQLPort:      "3306",
		MySQLDB:        "streampay",
		MySQLUser:      "streampay",
		MySQLPass:      "secret",
		RedisAddr:      "localhost:6379",
		AdminAccountID: strings.Repeat("d", 32),
		IdempTTLSecs:   300,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_MissingAdmin(t *testing.T) {
	c := validConfig()
	c.AdminAccountID = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing admin account")
	}
}

func TestValidate_BadAdminFormat(t *testing.T) {
	c := validConfig()
	c.AdminAccountID = "ADMIN"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for non-hex admin account")
	}
}

func TestValidate_BadPort(t *testing.T) {
	c := validConfig()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestLoad_MalformedNumericEnvRejected(t *testing.T) {
	t.Setenv("ADMIN_ACCOUNT_ID", strings.Repeat("d", 32))
	t.Setenv("MYSQL_HOST", "localhost")

	t.Setenv("REDIS_DB", "two")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "300")
	c := Load()
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "REDIS_DB") {
		t.Fatalf("Validate = %v, want REDIS_DB error", err)
	}

	t.Setenv("REDIS_DB", "2")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "5m")
	c = Load()
	err = c.Validate()
	if err == nil || !strings.Contains(err.Error(), "IDEMPOTENCY_TTL_SECONDS") {
		t.Fatalf("Validate = %v, want IDEMPOTENCY_TTL_SECONDS error", err)
	}

	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "120")
	c = Load()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate with well-formed env: %v", err)
	}
	if c.RedisDB != 2 || c.IdempTTLSecs != 120 {
		t.Fatalf("parsed values = %d/%d, want 2/120", c.RedisDB, c.IdempTTLSecs)
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn := validConfig().MySQLDSN()
	if !strings.HasPrefix(dsn, "streampay:secret@tcp(localhost:3306)/streampay?") {
		t.Fatalf("unexpected DSN: %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("DSN missing parseTime: %q", dsn)
	}
}
