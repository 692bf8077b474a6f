package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del backend ERP consumido.
type APIConfig struct {
	BaseURL string        // ERP_API_URL, por defecto http://localhost:8080
	Timeout time.Duration // 0 = sin timeout (las fallas se propagan tal cual)
}

// SessionConfig configuración del almacenamiento local de sesión.
type SessionConfig struct {
	File        string // archivo JSON con las claves token, role, user
	DefaultRole string // rol asumido si el backend no envía "rol" en el login
}

// HTTPConfig configuración de la consola HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DefaultBaseURL backend local usado cuando ERP_API_URL no está definido.
const DefaultBaseURL = "http://localhost:8080"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, ERP_API_URL, SESSION_FILE, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

// LoadFile igual que Load pero leyendo además el archivo indicado (flag --config del CLI).
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "erp-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "ERP_API_URL", DefaultBaseURL), "/"),
			Timeout: time.Duration(getInt(v, "ERP_HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Session: SessionConfig{
			File:        getString(v, "SESSION_FILE", defaultSessionFile()),
			DefaultRole: strings.ToUpper(getString(v, "SESSION_DEFAULT_ROLE", "ADMIN")),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 5173),
		},
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: ERP_API_URL vacío")
	}
	return cfg, nil
}

// defaultSessionFile ubica la sesión en el directorio de configuración del usuario.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".erp-admin-session.json"
	}
	return filepath.Join(dir, "erp-admin", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
