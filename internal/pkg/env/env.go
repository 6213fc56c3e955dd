package env

import (
	"os"

	"github.com/joho/godotenv"
)

var Env map[string]string

func GetEnv(key, def string) string {
	// First check our loaded Env map
	if val, ok := Env[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the .env file from the project root. The binaries under
// cmd/ run two levels below the root, hence the relative fallbacks.
func SetupEnvFile() {
	envFiles := []string{
		".env",
		"../../.env",
		"../../../.env",
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			return
		}
	}

	panic("No .env file found in any of the expected locations")
}

// SetupEnvFileOptional behaves like SetupEnvFile but tolerates a missing
// file, leaving configuration to the process environment. The sitemap
// generator runs in CI where no .env exists.
func SetupEnvFileOptional() {
	envFiles := []string{
		".env",
		"../../.env",
		"../../../.env",
	}

	for _, envFile := range envFiles {
		if parsed, err := godotenv.Read(envFile); err == nil {
			Env = parsed
			return
		}
	}
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}

// SiteURL is the public origin used in sitemap entries and mail links.
func SiteURL() string {
	return GetEnv("SITE_URL", "https://levitenleser.de")
}
