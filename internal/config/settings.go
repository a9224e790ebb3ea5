package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings — параметры запуска headless-прогона. Баланс игры сюда не входит.
type Settings struct {
	Seed        int64 // 0 — сид от текущего времени
	TickHz      int
	MaxTicks    int // 0 — без ограничения
	BotInterval int // тиков между выстрелами бота
}

// DefaultSettings returns the values used when no environment overrides are set.
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		TickHz:      TickRate,
		MaxTicks:    60 * TickRate,
		BotInterval: 15,
	}
}

// LoadSettings reads MD_* variables from the environment, loading envFile first
// when it exists. A missing file is not an error.
func LoadSettings(envFile string) (Settings, error) {
	s := DefaultSettings()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := readInt64("MD_SEED", &s.Seed); err != nil {
		return s, err
	}
	if err := readInt("MD_TICK_HZ", &s.TickHz); err != nil {
		return s, err
	}
	if err := readInt("MD_MAX_TICKS", &s.MaxTicks); err != nil {
		return s, err
	}
	if err := readInt("MD_BOT_INTERVAL", &s.BotInterval); err != nil {
		return s, err
	}

	if s.TickHz <= 0 {
		return s, fmt.Errorf("MD_TICK_HZ must be positive, got %d", s.TickHz)
	}
	if s.MaxTicks < 0 {
		return s, fmt.Errorf("MD_MAX_TICKS must not be negative, got %d", s.MaxTicks)
	}
	if s.BotInterval <= 0 {
		return s, fmt.Errorf("MD_BOT_INTERVAL must be positive, got %d", s.BotInterval)
	}
	return s, nil
}

func readInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func readInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	*dst = n
	return nil
}
