package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host string
		Port int
	}

	// LatencyConfig holds the simulated per-operation-class delays.
	// The store intentionally answers slowly so UI callers can exercise
	// loading states against deterministic timing.
	LatencyConfig struct {
		Read  time.Duration
		List  time.Duration
		Write time.Duration
		Bulk  time.Duration
	}

	Config struct {
		AppName      string
		Env          string // DEV (default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		Build        string
		RollbarToken string
		Server       ServerConfig
		Latency      LatencyConfig
	}
)

func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) IsProd() bool {
	return c.Env == "PROD"
}

// NewConfig loads configuration from the environment with sane defaults.
// A config/.env.<env> file is loaded first if it exists.
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("appName", "Shule")
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("serverHost", "0.0.0.0")
	v.SetDefault("serverPort", 8000)
	v.SetDefault("latencyRead", 200*time.Millisecond)
	v.SetDefault("latencyList", 300*time.Millisecond)
	v.SetDefault("latencyWrite", 400*time.Millisecond)
	v.SetDefault("latencyBulk", 500*time.Millisecond)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     env == "TEST",
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host: v.GetString("serverHost"),
			Port: v.GetInt("serverPort"),
		},
		Latency: LatencyConfig{
			Read:  v.GetDuration("latencyRead"),
			List:  v.GetDuration("latencyList"),
			Write: v.GetDuration("latencyWrite"),
			Bulk:  v.GetDuration("latencyBulk"),
		},
	}
}
