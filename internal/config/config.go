package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	JwtSecret      string
	Issuer         string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	Currency       string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
)

// fileConfig is the optional config.yaml overlay; environment variables win
// over file values.
type fileConfig struct {
	ServerPort string `yaml:"server_port"`
	Currency   string `yaml:"currency"`
	Database   struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Minio struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		UseSSL    bool   `yaml:"use_ssl"`
		Bucket    string `yaml:"bucket"`
	} `yaml:"minio"`
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	fc := loadFile("config.yaml")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "granttrack")
	DbHost = getEnv("DB_HOST", fallback(fc.Database.Host, "localhost"))
	DbPort = getEnv("DB_PORT", fallback(fc.Database.Port, "5432"))
	DbUser = getEnv("DB_USER", fallback(fc.Database.User, "postgres"))
	DbPassword = getEnv("DB_PASSWORD", fallback(fc.Database.Password, "password"))
	DbName = getEnv("DB_NAME", fallback(fc.Database.Name, "granttrack"))
	ServerPort = getEnv("SERVER_PORT", fallback(fc.ServerPort, "8080"))
	Currency = getEnv("CURRENCY", fallback(fc.Currency, "CZK"))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", fallback(fc.Minio.Endpoint, "localhost:9000"))
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", fallback(fc.Minio.AccessKey, "minio"))
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", fallback(fc.Minio.SecretKey, "minio123"))
	MinioBucket = getEnv("MINIO_BUCKET", fallback(fc.Minio.Bucket, "granttrack-documents"))
	if v, ok := os.LookupEnv("MINIO_USE_SSL"); ok {
		MinioUseSSL, _ = strconv.ParseBool(v)
	} else {
		MinioUseSSL = fc.Minio.UseSSL
	}
}

func loadFile(path string) fileConfig {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("Ignoring unreadable %s: %v", path, err)
	}
	return fc
}

func getEnv(key, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return def
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
