package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type SMTPConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	From       string `mapstructure:"from"`
	Password   string `mapstructure:"password"`
	AdminEmail string `mapstructure:"adminEmail"`
}

type TwilioConfig struct {
	AccountSID string `mapstructure:"accountSID"`
	AuthToken  string `mapstructure:"authToken"`
	FromNumber string `mapstructure:"fromNumber"`
	StaffPhone string `mapstructure:"staffPhone"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Store  StoreConfig  `mapstructure:"store"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Twilio TwilioConfig `mapstructure:"twilio"`
}

// LoadConfig reads config.yaml from path and overlays environment variables.
// A missing config file is fine; env vars alone can configure the server.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("store.path", "STORE_PATH")
	viper.BindEnv("smtp.host", "SMTP_HOST")
	viper.BindEnv("smtp.port", "SMTP_PORT")
	viper.BindEnv("smtp.from", "EMAIL_USER")
	viper.BindEnv("smtp.password", "EMAIL_PASS")
	viper.BindEnv("smtp.adminEmail", "ADMIN_EMAIL")
	viper.BindEnv("twilio.accountSID", "TWILIO_ACCOUNT_SID")
	viper.BindEnv("twilio.authToken", "TWILIO_AUTH_TOKEN")
	viper.BindEnv("twilio.fromNumber", "TWILIO_FROM_NUMBER")
	viper.BindEnv("twilio.staffPhone", "STAFF_PHONE")

	viper.SetDefault("server.port", "3001")
	viper.SetDefault("jwt.expiration", "168h")
	viper.SetDefault("store.path", "database.json")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
