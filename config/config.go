package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database configured through the environment.
// DB_DRIVER selects mysql or sqlite; sqlite is the default so the
// admin tool runs without any external service.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	switch driver {
	case "mysql":
		dsn := os.Getenv("DATABASE_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASSWORD"),
				envOr("DB_HOST", "127.0.0.1"),
				envOr("DB_PORT", "3306"),
				envOr("DB_NAME", "reservation_admin"),
			)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "", "sqlite":
		path := envOr("SQLITE_PATH", "reservation_admin.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
