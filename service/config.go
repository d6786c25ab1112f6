package service

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Stripe struct {
		PublishableKey string
		SecretKey      string
		WebhookSecret  string
		HostingPriceID string
	}

	Cloudinary struct {
		URL string
	}

	EasyPost struct {
		APIKey string
	}

	Upload struct {
		MaxSize int64
		Dir     string
	}

	Assets struct {
		ImageDir string
		FontPath string
	}

	Session struct {
		Secret string
	}

	Admin struct {
		Username string
		Password string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/famoussince.db"),
	}

	// Stripe
	config.Stripe.PublishableKey = getEnv("STRIPE_PUBLISHABLE_KEY", "")
	config.Stripe.SecretKey = getEnv("STRIPE_SECRET_KEY", "")
	config.Stripe.WebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")
	config.Stripe.HostingPriceID = getEnv("STRIPE_HOSTING_PRICE_ID", "")

	// Cloudinary
	config.Cloudinary.URL = getEnv("CLOUDINARY_URL", "")

	// EasyPost
	config.EasyPost.APIKey = getEnv("EASYPOST_API_KEY", "")

	// Upload
	maxSize := getEnv("UPLOAD_MAX_SIZE", "10485760") // 10MB default
	if size, err := strconv.ParseInt(maxSize, 10, 64); err == nil {
		config.Upload.MaxSize = size
	} else {
		config.Upload.MaxSize = 10485760
	}
	config.Upload.Dir = getEnv("UPLOAD_DIR", "./public/uploads")

	// Mockup assets
	config.Assets.ImageDir = getEnv("MODEL_IMAGE_DIR", "./public/models")
	config.Assets.FontPath = getEnv("MOCKUP_FONT_PATH", "")

	// Session
	config.Session.Secret = getEnv("SESSION_SECRET", "development-secret")

	// Admin
	config.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	config.Admin.Password = getEnv("ADMIN_PASSWORD", "password")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
