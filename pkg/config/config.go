package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// BillingConfig parámetros del motor de cálculo de facturas.
type BillingConfig struct {
	// TaxTypes catálogo "codigo:porcentaje" separado por comas, ej. "none:0,gst_18:18".
	TaxTypes        string
	DefaultRateType string // with_tax | without_tax
	DisplayLocale   string // etiqueta BCP 47 para formatear montos, ej. "en-IN"
	DisplayPlaces   int
}

// Catálogo por defecto: categorías GST.
const defaultTaxTypes = "none:0,exempt:0,gst_0_25:0.25,gst_3:3,gst_5:5,gst_12:12,gst_18:18,gst_28:28"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BILLING_TAX_TYPES, etc.
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

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "hisab-billing"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Billing: BillingConfig{
			TaxTypes:        getString(v, "BILLING_TAX_TYPES", defaultTaxTypes),
			DefaultRateType: getString(v, "BILLING_DEFAULT_RATE_TYPE", "without_tax"),
			DisplayLocale:   getString(v, "BILLING_DISPLAY_LOCALE", "en-IN"),
			DisplayPlaces:   getInt(v, "BILLING_DISPLAY_PLACES", 2),
		},
	}

	if cfg.Billing.DefaultRateType != "with_tax" && cfg.Billing.DefaultRateType != "without_tax" {
		return nil, fmt.Errorf("BILLING_DEFAULT_RATE_TYPE inválido: %q", cfg.Billing.DefaultRateType)
	}
	if cfg.Billing.DisplayPlaces < 0 || cfg.Billing.DisplayPlaces > 8 {
		return nil, fmt.Errorf("BILLING_DISPLAY_PLACES fuera de rango: %d", cfg.Billing.DisplayPlaces)
	}
	return cfg, nil
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
