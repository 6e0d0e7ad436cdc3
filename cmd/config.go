package main

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppKey        string
	AppSecret     string
	TokenEndpoint string
	RedirectURI   string
	ApiUrl        string
	AccountKey    string
	Port          string

	LogLevel  string
	StaticDir string
	LokiAddr  string

	TelegramApiToken string
	TelegramChatID   string

	SimFallbackPrice float64
}

var ErrEnvNotFound = errors.New("err env not found")

const defaultSimFallbackPrice = 70

func (a *App) loadConfig(confFileName string) error {
	var cfg Config

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	if cfg.AppKey, err = cfg.set("APP_KEY"); err != nil {
		return err
	}

	if cfg.AppSecret, err = cfg.set("APP_SECRET"); err != nil {
		return err
	}

	if cfg.TokenEndpoint, err = cfg.set("TOKEN_ENDPOINT"); err != nil {
		return err
	}

	if cfg.RedirectURI, err = cfg.set("REDIRECT_URI"); err != nil {
		return err
	}

	if cfg.ApiUrl, err = cfg.set("API_URL"); err != nil {
		return err
	}

	if cfg.AccountKey, err = cfg.set("ACCOUNT_KEY"); err != nil {
		return err
	}

	if cfg.Port, err = cfg.set("PORT"); err != nil {
		return err
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.StaticDir = os.Getenv("STATIC_DIR")
	cfg.LokiAddr = os.Getenv("LOKI_ADDR")
	cfg.TelegramApiToken = os.Getenv("TELEGRAM_API_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	cfg.SimFallbackPrice = defaultSimFallbackPrice
	if v := os.Getenv("SIM_FALLBACK_PRICE"); v != "" {
		if cfg.SimFallbackPrice, err = strconv.ParseFloat(v, 64); err != nil {
			return err
		}
	}

	a.Config = &cfg

	return nil
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", ErrEnvNotFound
	}

	return os.Getenv(key), nil
}
