// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Postgres      DatabaseConfiguration
	Redis         RedisConfiguration
	Queue         QueueConfiguration
	JWT           JWTConfiguration
	Upload        UploadConfiguration
	Elasticsearch ElasticsearchConfiguration
}

// ServerConfiguration stores the host, port and other web server settings
type ServerConfiguration struct {
	Host string
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// QueueConfiguration stores data for the job queue broker
type QueueConfiguration struct {
	RedisAddr string
}

// JWTConfiguration stores the token signing keys and access token age
type JWTConfiguration struct {
	AccessKey      string
	RefreshKey     string
	AccessTokenAge string
}

// UploadConfiguration stores settings for cover art uploads
type UploadConfiguration struct {
	Dir      string
	MaxBytes int64
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("postgres.dsn", "host=localhost user=openmusic password=openmusic dbname=openmusic port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "30m")
	viper.SetDefault("queue.redisAddr", "localhost:6379")
	viper.SetDefault("jwt.accessKey", "")
	viper.SetDefault("jwt.refreshKey", "")
	viper.SetDefault("jwt.accessTokenAge", "30m")
	viper.SetDefault("upload.dir", "uploads/covers")
	viper.SetDefault("upload.maxBytes", 512000)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 retrieves a 64-bit integer value from the configuration
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
