package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// RedisConfig points the cache at a Redis server. An empty Addr keeps the
// cache in process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AfricasTalkingConfig holds the SMS gateway credentials.
type AfricasTalkingConfig struct {
	Username  string
	APIKey    string
	Shortcode string
	Sandbox   bool
}

// Configured reports whether real SMS sending is possible.
func (c AfricasTalkingConfig) Configured() bool {
	return c.Username != "" && c.APIKey != ""
}

// AppConfig holds all application configuration
type AppConfig struct {
	Port             int
	Debug            bool
	Redis            RedisConfig
	CacheTTL         time.Duration
	AssistantDelay   time.Duration
	GreetingInterval time.Duration
	ReminderInterval time.Duration
	AfricasTalking   AfricasTalkingConfig
}

// LoadConfig reads configuration from the environment, after loading the
// optional .env file. A missing .env file is not an error.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 && envPath[0] != "" {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if len(envPath) > 0 && envPath[0] != "" {
			return nil, fmt.Errorf("could not load env file %s: %w", envPath[0], err)
		}
		log.Printf("INFO: no .env file loaded (%v), using process environment", err)
	}

	cfg := &AppConfig{
		Port:             getEnvAsInt("PORT", 8080),
		Debug:            getEnvAsBool("RENTI_DEBUG", false),
		CacheTTL:         getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		AssistantDelay:   getEnvAsDuration("ASSISTANT_DELAY", 600*time.Millisecond),
		GreetingInterval: getEnvAsDuration("GREETING_INTERVAL", time.Minute),
		ReminderInterval: getEnvAsDuration("REMINDER_INTERVAL", 24*time.Hour),
		Redis: RedisConfig{
			Addr:     getEnvAsString("REDIS_ADDR", ""),
			Password: getEnvAsString("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		AfricasTalking: AfricasTalkingConfig{
			Username: getEnvAsString("AFRICAS_TALKING_USERNAME", ""),
			APIKey:   getEnvAsString("AFRICAS_TALKING_API_KEY", ""),
			// prefer the SMS specific variable, fall back to the legacy name
			Shortcode: getEnvAsString("AFRICAS_TALKING_SMS_SHORTCODE", getEnvAsString("AFRICAS_TALKING_SHORTCODE", "")),
			Sandbox:   getEnvAsBool("AFRICAS_TALKING_SANDBOX", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail later at runtime.
func (c *AppConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.GreetingInterval <= 0 {
		return fmt.Errorf("GREETING_INTERVAL must be positive")
	}
	if c.ReminderInterval <= 0 {
		return fmt.Errorf("REMINDER_INTERVAL must be positive")
	}
	if c.AssistantDelay < 0 {
		return fmt.Errorf("ASSISTANT_DELAY cannot be negative")
	}
	return nil
}

// getEnvAsString reads an environment variable or returns the default
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int or returns the default.
// Logs a warning when the variable is set but unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARN: environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads an environment variable as bool or returns the default
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("WARN: environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration reads an environment variable as a Go duration ("90s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("WARN: environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}
