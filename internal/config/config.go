package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = "localhost:50051"
	defaultInfoTypes   = "EMAIL_ADDRESS,PERSON_NAME"
	defaultInput       = "Hello I am Luli, She is my sister, Tracy!!!"
	defaultCallTimeout = 30 * time.Second
)

// Cfg holds all runtime configuration loaded from environment variables.
type Cfg struct {
	// DLP service address, e.g. localhost:50051
	Addr string

	// Info types to detect, in the order they are sent.
	// DLP_INFO_TYPES=EMAIL_ADDRESS,PERSON_NAME
	InfoTypes []string

	// Text submitted on each run.
	Input string

	// Deidentify also runs the de-identification call (DLP_DEIDENTIFY=true).
	Deidentify bool

	// Per-call deadline applied by the caller; 0 disables it.
	CallTimeout time.Duration

	LogLevel slog.Level
}

// Load reads .env (if present) then environment variables and returns Cfg.
func Load() (*Cfg, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	addr := strings.TrimSpace(os.Getenv("DLP_ADDR"))
	if addr == "" {
		addr = defaultAddr
	}

	rawTypes := os.Getenv("DLP_INFO_TYPES")
	if strings.TrimSpace(rawTypes) == "" {
		rawTypes = defaultInfoTypes
	}
	infoTypes, err := parseInfoTypes(rawTypes)
	if err != nil {
		return nil, err
	}

	// Input is taken verbatim; surrounding whitespace is content.
	input, ok := os.LookupEnv("DLP_INPUT")
	if !ok {
		input = defaultInput
	}

	deidRaw := strings.TrimSpace(os.Getenv("DLP_DEIDENTIFY"))
	deidentify := deidRaw == "1" || strings.EqualFold(deidRaw, "true")

	callTimeout := defaultCallTimeout
	if raw := strings.TrimSpace(os.Getenv("DLP_CALL_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("DLP_CALL_TIMEOUT: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("DLP_CALL_TIMEOUT must not be negative, got %s", d)
		}
		callTimeout = d
	}

	level := slog.LevelInfo
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return &Cfg{
		Addr:        addr,
		InfoTypes:   infoTypes,
		Input:       input,
		Deidentify:  deidentify,
		CallTimeout: callTimeout,
		LogLevel:    level,
	}, nil
}

// parseInfoTypes splits "EMAIL_ADDRESS, PERSON_NAME,," into names, skipping
// empty entries.
func parseInfoTypes(raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("DLP_INFO_TYPES is set but contains no valid entries")
	}
	return out, nil
}
