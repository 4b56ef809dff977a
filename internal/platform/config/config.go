package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	Cache    CacheConfig    `json:"cache"`
	Storage  StorageConfig  `json:"storage"`
	App      AppConfig      `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Type  string        `json:"type"`
	Mongo MongoDBConfig `json:"mongo"`
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	Host                   string `json:"host"`
	Port                   int    `json:"port"`
	Username               string `json:"username"`
	Password               string `json:"password"`
	Database               string `json:"database"`
	AuthDatabase           string `json:"authDatabase"`
	ReplicaSet             string `json:"replicaSet"`
	SSL                    bool   `json:"ssl"`
	ConnectTimeout         int    `json:"connectTimeout"`
	SocketTimeout          int    `json:"socketTimeout"`
	MaxPoolSize            int    `json:"maxPoolSize"`
	MinPoolSize            int    `json:"minPoolSize"`
	MaxIdleTime            int    `json:"maxIdleTime"`
	ServerSelectionTimeout int    `json:"serverSelectionTimeout"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Prefix  string        `json:"prefix"`
	TTL     time.Duration `json:"ttl"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// StorageConfig holds media storage configuration
type StorageConfig struct {
	Endpoint        string `json:"endpoint"`
	AccountID       string `json:"accountId"`
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	BucketName      string `json:"bucketName"`
	Region          string `json:"region"`
	PublicURL       string `json:"publicUrl"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	OrgName   string `json:"orgName"`
	WebDomain string `json:"webDomain"`
}

// LoadFromEnv loads configuration from environment variables.
// godotenv.Load() reads the .env file and loads its values into the
// environment for this process only if they are not already set, which
// gives real environment variables precedence.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		// Not an error: the .env file is optional in deployed environments.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			BaseRoute: getEnvOrDefault("BASE_ROUTE", "/api"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Type: getEnvOrDefault("DB_TYPE", "mongodb"),
			Mongo: MongoDBConfig{
				Host:                   getEnvOrDefault("MONGO_HOST", "localhost"),
				Port:                   getEnvAsInt("MONGO_PORT", 27017),
				Username:               getEnvOrDefault("MONGO_USERNAME", ""),
				Password:               getEnvOrDefault("MONGO_PASSWORD", ""),
				Database:               getEnvOrDefault("MONGO_DATABASE", "waveline"),
				AuthDatabase:           getEnvOrDefault("MONGO_AUTH_DATABASE", ""),
				ReplicaSet:             getEnvOrDefault("MONGO_REPLICA_SET", ""),
				SSL:                    getEnvAsBool("MONGO_SSL", false),
				ConnectTimeout:         getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10),
				SocketTimeout:          getEnvAsInt("MONGO_SOCKET_TIMEOUT", 30),
				MaxPoolSize:            getEnvAsInt("MONGO_MAX_POOL_SIZE", 100),
				MinPoolSize:            getEnvAsInt("MONGO_MIN_POOL_SIZE", 0),
				MaxIdleTime:            getEnvAsInt("MONGO_MAX_IDLE_TIME", 300),
				ServerSelectionTimeout: getEnvAsInt("MONGO_SERVER_SELECTION_TIMEOUT", 30),
			},
		},
		JWT: JWTConfig{
			PublicKey:  getEnvOrDefault("JWT_PUBLIC_KEY", ""),
			PrivateKey: getEnvOrDefault("JWT_PRIVATE_KEY", ""),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", false),
			Prefix:  getEnvOrDefault("CACHE_PREFIX", "waveline"),
			TTL:     getEnvAsDuration("CACHE_TTL", time.Hour),
			Redis: RedisConfig{
				Address:      getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:     getEnvOrDefault("REDIS_PASSWORD", ""),
				Database:     getEnvAsInt("REDIS_DATABASE", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxConnAge:   getEnvAsDuration("REDIS_MAX_CONN_AGE", 30*time.Minute),
			},
		},
		Storage: StorageConfig{
			Endpoint:        getEnvOrDefault("STORAGE_ENDPOINT", ""),
			AccountID:       getEnvOrDefault("STORAGE_ACCOUNT_ID", ""),
			AccessKeyID:     getEnvOrDefault("STORAGE_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("STORAGE_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("STORAGE_BUCKET_NAME", ""),
			Region:          getEnvOrDefault("STORAGE_REGION", "auto"),
			PublicURL:       getEnvOrDefault("STORAGE_PUBLIC_URL", ""),
		},
		App: AppConfig{
			Name:      getEnvOrDefault("APP_NAME", "Waveline"),
			OrgName:   getEnvOrDefault("ORG_NAME", "Waveline"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
		},
	}

	return config, nil
}

// Validate checks that the configuration is complete enough to start.
func (c *Config) Validate() error {
	if c.Database.Mongo.Host == "" {
		return fmt.Errorf("MONGO_HOST is required")
	}
	if c.Database.Mongo.Database == "" {
		return fmt.Errorf("MONGO_DATABASE is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port number")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
