package config

import "os"

// Config holds everything read from the environment at startup.
// JWT settings are read lazily by the utils package so tokens can be
// verified without threading the config through every layer.
type Config struct {
	Port       string
	GinMode    string
	MongoURI   string
	MongoDB    string
	AdminName  string
	AdminEmail string
}

// Load reads the configuration from the environment, falling back to
// development defaults. Call godotenv.Load first if a .env file is used.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "santa_game"),
		AdminName:  getEnv("ADMIN_NAME", "Admin"),
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@santa-game.local"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
