package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	// Viewer / template gate
	APIBase              string
	TemplateSecret       string
	AllowedRefererDomain string

	// Auth
	JWTSecret string

	// Database
	DBUser string
	DBPass string
	DBHost string
	DBName string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	apiBase := strings.TrimSpace(os.Getenv("API_BASE"))
	if apiBase == "" {
		apiBase = "/api"
	}

	refererDomain := strings.TrimSpace(os.Getenv("ALLOWED_REFERER_DOMAIN"))
	if refererDomain == "" {
		refererDomain = "traverse-hq.com"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:              appAddr,
		GinMode:              strings.TrimSpace(os.Getenv("GIN_MODE")),
		APIBase:              apiBase,
		TemplateSecret:       strings.TrimSpace(os.Getenv("TEMPLATE_SECRET")),
		AllowedRefererDomain: refererDomain,
		JWTSecret:            jwtSecret,
		DBUser:               envOr("DB_USER", "root"),
		DBPass:               os.Getenv("DB_PASS"),
		DBHost:               envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:               envOr("DB_NAME", "traverse"),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
