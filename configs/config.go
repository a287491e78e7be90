package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// CommissionRate returns the platform's cut of each completed lesson.
// Falls back to 0.2 when PLATFORM_COMMISSION_RATE is unset or malformed.
func CommissionRate() float64 {
	rate, err := strconv.ParseFloat(Config("PLATFORM_COMMISSION_RATE"), 64)
	if err != nil || rate < 0 || rate >= 1 {
		return 0.2
	}
	return rate
}
