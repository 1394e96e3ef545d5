package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string `mapstructure:"REFRESH_TOKEN_COOKIE_PATH"`
	RefreshTokenSecret         string

	// Analytics / cross origin
	PosthogAPIKey      string `mapstructure:"POSTHOG_API_KEY"`
	CORSAllowedOrigins []string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Fixed ledger accounts. Disposal gain/loss and transfer clearing
	// postings are not carried on the documents themselves.
	DisposalGainCoaID string `mapstructure:"DISPOSAL_GAIN_COA_ID"`
	DisposalLossCoaID string `mapstructure:"DISPOSAL_LOSS_COA_ID"`
	TransferInCoaID   string `mapstructure:"TRANSFER_IN_CLEARING_COA_ID"`
	TransferOutCoaID  string `mapstructure:"TRANSFER_OUT_CLEARING_COA_ID"`
}

const (
	defaultJWTSecret          = "a-very-secret-key-should-be-longer-and-random"
	defaultRefreshTokenSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// LoadConfig reads configuration from the environment, with a .env file as a
// lower-priority source when present. Missing values fall back to defaults
// with a logged warning; nothing here is fatal so local development works
// without any environment set up.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "erp-backoffice")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("REFRESH_TOKEN_SECRET", defaultRefreshTokenSecret)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("DISPOSAL_GAIN_COA_ID", "")
	viper.SetDefault("DISPOSAL_LOSS_COA_ID", "")
	viper.SetDefault("TRANSFER_IN_CLEARING_COA_ID", "")
	viper.SetDefault("TRANSFER_OUT_CLEARING_COA_ID", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),

		JWTSecret: viper.GetString("JWT_SECRET"),
		JWTIssuer: viper.GetString("JWT_ISSUER"),

		RefreshTokenCookieName: viper.GetString("REFRESH_TOKEN_COOKIE_NAME"),
		RefreshTokenCookiePath: viper.GetString("REFRESH_TOKEN_COOKIE_PATH"),
		RefreshTokenSecret:     viper.GetString("REFRESH_TOKEN_SECRET"),

		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
		CORSAllowedOrigins: strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ","),

		GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:    viper.GetString("FRONTEND_BASE_URL"),

		DisposalGainCoaID: viper.GetString("DISPOSAL_GAIN_COA_ID"),
		DisposalLossCoaID: viper.GetString("DISPOSAL_LOSS_COA_ID"),
		TransferInCoaID:   viper.GetString("TRANSFER_IN_CLEARING_COA_ID"),
		TransferOutCoaID:  viper.GetString("TRANSFER_OUT_CLEARING_COA_ID"),
	}

	cfg.JWTExpiryDuration = parseDurationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.RefreshTokenExpiryDuration = parseDurationOrDefault("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.RefreshTokenSecret == defaultRefreshTokenSecret {
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure secret.")
	}
	if cfg.DisposalGainCoaID == "" || cfg.DisposalLossCoaID == "" {
		log.Println("Warning: DISPOSAL_GAIN_COA_ID / DISPOSAL_LOSS_COA_ID not set. Asset disposals cannot be completed.")
	}
	if cfg.TransferInCoaID == "" || cfg.TransferOutCoaID == "" {
		log.Println("Warning: TRANSFER_IN_CLEARING_COA_ID / TRANSFER_OUT_CLEARING_COA_ID not set. Asset transfers cannot be completed.")
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth variables incomplete. Google sign-in will not function.")
	}

	return cfg, nil
}

// parseDurationOrDefault reads a duration-valued setting, falling back to def
// when the value does not parse.
func parseDurationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, def)
		return def
	}
	return d
}
