package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/GitBolt/shapefinder-sub000/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	HubTitle      string
	Moderators    []string // usernames allowed to provision the hub

	// Guess limits
	GuessRateLimit  int
	GuessRateWindow int
}

// Load reads configuration from the environment (.env in development).
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		logger.Warn("REDIS_ADDR is not set, falling back to in-memory store")
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	hubTitle := os.Getenv("HUB_TITLE")
	if hubTitle == "" {
		hubTitle = "Shape Finder Hub"
	}

	// moderator usernames, comma separated in env
	var moderators []string
	if v := os.Getenv("MODERATORS"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				moderators = append(moderators, name)
			}
		}
	}

	guessRateLimit := 30
	if v := os.Getenv("GUESS_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			guessRateLimit = n
		}
	}

	guessRateWindow := 60 // seconds
	if v := os.Getenv("GUESS_RATE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			guessRateWindow = n
		}
	}

	return &Config{
		AppPort:         port,
		RedisAddr:       redisAddr,
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		JWTSecret:       jwtSecret,
		HubTitle:        hubTitle,
		Moderators:      moderators,
		GuessRateLimit:  guessRateLimit,
		GuessRateWindow: guessRateWindow,
	}
}
