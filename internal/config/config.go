package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Both binaries (the API tier and the web tier)
// load the same Config; each reads only the fields it needs.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	APIPort       string // HTTP port the API tier listens on
	WebPort       string // HTTP port the web tier listens on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	APIBaseURL    string // base URL the web tier uses to reach the API tier
	ServiceSecret string // secret used to sign service tokens between tiers
	SessionTTLHrs int    // session lifetime in hours (fixed, no sliding renewal)
	BcryptCost    int    // bcrypt cost for password hashing
	CookieSecure  bool   // mark the session cookie Secure (enable behind HTTPS)
	SessionCookie string // name of the session cookie
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		APIPort:       must("API_PORT"),
		WebPort:       must("WEB_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		APIBaseURL:    must("API_URL"),
		ServiceSecret: must("SERVICE_TOKEN_SECRET"),
		SessionTTLHrs: mustInt("SESSION_TTL_HOURS"),
		BcryptCost:    mustInt("BCRYPT_COST"),
		CookieSecure:  envBool("COOKIE_SECURE", false),
		SessionCookie: envStr("SESSION_COOKIE_NAME", "pm_session"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}
