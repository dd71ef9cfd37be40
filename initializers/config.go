package initializers

import (
	"log"
	"os"
	"strconv"
)

// Config carries the deployment settings that components receive at
// construction instead of reading from the environment themselves.
type Config struct {
	Port               string
	UploadDir          string
	MaxUploadBytes     int64
	ContactNotifyEmail string
}

const defaultMaxUploadBytes = 500 * 1024 * 1024 // 500 MiB

func LoadConfig() Config {
	cfg := Config{
		Port:               os.Getenv("PORT"),
		UploadDir:          os.Getenv("UPLOAD_DIR"),
		MaxUploadBytes:     defaultMaxUploadBytes,
		ContactNotifyEmail: os.Getenv("CONTACT_NOTIFY_EMAIL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}

	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			log.Fatalf("Invalid MAX_UPLOAD_BYTES value: %q", raw)
		}
		cfg.MaxUploadBytes = limit
	}

	return cfg
}
