package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	// The one account allowed to approve, reject and write off loans.
	AdminAccountID string

	IdempTTLSecs int

	// Malformed numeric env values, reported by Validate rather than
	// silently replaced with defaults.
	envErrs []string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "streampay"),
		MySQLUser: getenv("MYSQL_USER", "streampay"),
		MySQLPass: getenv("MYSQL_PASS", "streampay"),

		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		AdminAccountID: os.Getenv("ADMIN_ACCOUNT_ID"),
		IdempTTLSecs:   300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		} else {
			c.envErrs = append(c.envErrs, fmt.Sprintf("REDIS_DB %q is not an integer", v))
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		} else {
			c.envErrs = append(c.envErrs, fmt.Sprintf("IDEMPOTENCY_TTL_SECONDS %q is not an integer", v))
		}
	}
	return c
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func (c *Config) Validate() error {
	if len(c.envErrs) > 0 {
		return fmt.Errorf("invalid env config: %s", strings.Join(c.envErrs, "; "))
	}
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.AdminAccountID == "" {
		return errors.New("missing ADMIN_ACCOUNT_ID")
	}
	if !reHex32.MatchString(c.AdminAccountID) {
		return fmt.Errorf("ADMIN_ACCOUNT_ID %q is not 32-char lowercase hex", c.AdminAccountID)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
