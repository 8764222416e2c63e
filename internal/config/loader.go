package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"httplite/internal/log"

	"github.com/joho/godotenv"
)

const (
	defaultMaxRequestSize = 1 << 20
	minMaxRequestSize     = 1024
	maxMaxRequestSize     = 64 << 20
)

type config struct {
	address string
	port    string

	directory string

	maxRequestSize  int
	readTimeout     time.Duration
	shutdownTimeout time.Duration
	lineJoinedBody  bool

	logLevel string
	logJSON  bool
}

func parse() (*config, error) {
	address := getenv("ADDRESS", "127.0.0.1")
	if net.ParseIP(address) == nil && address != "localhost" {
		return nil, fmt.Errorf("invalid ADDRESS value %q", address)
	}

	port := getenv("PORT", "4221")
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return nil, fmt.Errorf("invalid PORT value %q", port)
	}

	readTimeout, err := getenvDuration("READ_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	logLevel, err := parseLogLevel()
	if err != nil {
		return nil, err
	}

	return &config{
		address:         address,
		port:            port,
		directory:       getenv("DIRECTORY", ""),
		maxRequestSize:  parseMaxRequestSize(),
		readTimeout:     readTimeout,
		shutdownTimeout: shutdownTimeout,
		lineJoinedBody:  getenvBool("LINE_JOINED_BODY", false),
		logLevel:        logLevel,
		logJSON:         getenvBool("LOG_JSON", false),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseLogLevel() (string, error) {
	switch level := strings.ToLower(getenv("LOG_LEVEL", "info")); level {
	case "debug", "info", "warn", "error":
		return level, nil
	default:
		return "", fmt.Errorf("invalid LOG_LEVEL value %q", level)
	}
}

func parseMaxRequestSize() int {
	raw := getenv("MAX_REQUEST_SIZE", strconv.Itoa(defaultMaxRequestSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minMaxRequestSize || size > maxMaxRequestSize {
		log.Warnf("Invalid MAX_REQUEST_SIZE %q, falling back to %d", raw, defaultMaxRequestSize)
		return defaultMaxRequestSize
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s value %q", key, val)
	}
	return d, nil
}
