package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	AuthDelay     time.Duration // simulated round-trip for mock auth/payment calls
	PageSize      int
	FreeShipMin   int // subtotal (whole rupees) at which shipping becomes free
	ShipFee       int
	RazorpayKey   string
	WhatsAppPhone string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "monabazaar.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./monabazaar.log"
	}
	delayMS := intEnv("AUTH_DELAY_MS", 1000)
	pageSize := intEnv("PAGE_SIZE", 12)
	freeShip := intEnv("FREE_SHIP_MIN", 2999)
	shipFee := intEnv("SHIP_FEE", 99)
	rzpKey := os.Getenv("RAZORPAY_KEY")
	if rzpKey == "" {
		rzpKey = "rzp_test_1234567890" // demo mode key
	}
	waPhone := os.Getenv("WHATSAPP_PHONE")
	if waPhone == "" {
		waPhone = "919876543210"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       logFile,
		AuthDelay:     time.Duration(delayMS) * time.Millisecond,
		PageSize:      pageSize,
		FreeShipMin:   freeShip,
		ShipFee:       shipFee,
		RazorpayKey:   rzpKey,
		WhatsAppPhone: waPhone,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s AUTH_DELAY=%s PAGE_SIZE=%d",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.AuthDelay, cfg.PageSize)
	return cfg
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring bad %s=%q", key, v)
		return def
	}
	return n
}
