package core

import (
	"fmt"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageFirestore = "firestore"
	StoragePostgres  = "postgres"
	StorageMemory    = "memory"
)

type (
	Config struct {
		Build            string
		Env              string
		Debug            bool
		TestMode         bool
		AppName          string
		SecretKey        string
		FrontendBaseURL  string
		DefaultFromEmail mail.Address
		SendgridApiKey   string
		RollbarToken     string
		WorkDir          string

		Storage  StorageConfig
		Firebase FirebaseConfig
		Database DatabaseConfig
		Server   ServerConfig
	}

	StorageConfig struct {
		Backend string
	}

	FirebaseConfig struct {
		ProjectID       string
		CredentialsFile string
		CredentialsJSON string
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	ServerConfig struct {
		Host                      string
		Port                      string
		DebugHost                 string
		ReadTimeout               time.Duration
		WriteTimeout              time.Duration
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}
)

func (dc DatabaseConfig) Address() string {
	return net.JoinHostPort(dc.Host, dc.Port)
}

func (sc ServerConfig) Address() string {
	return net.JoinHostPort(sc.Host, sc.Port)
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageFirestore:
		if c.Firebase.ProjectID == "" {
			return errors.New("firebase.projectId is required with the firestore storage backend")
		}
	case StoragePostgres:
		if c.Database.Name == "" {
			return errors.New("database.name is required with the postgres storage backend")
		}
	case StorageMemory:
	default:
		return errors.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if !(c.Debug || c.TestMode) && c.SecretKey == defaultSecretKey {
		return errors.New("secretKey must be set outside of DEV and TEST")
	}
	return nil
}

const defaultSecretKey = "k3$v+9zq!7l^tq0wz@#a8e)p1b6r(x_m2n5c4d-paatthya"

// NewConfig reads the configuration from the environment (`<ENV>_<KEY>` variables)
// and the optional `config/.env.<env>` file.
func NewConfig() (*Config, error) {
	v := viper.New()

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("build", "develop")
	v.SetDefault("debug", env == "DEV")
	v.SetDefault("testMode", env == "TEST")
	v.SetDefault("appName", "Paatthya")
	v.SetDefault("secretKey", defaultSecretKey)
	v.SetDefault("frontendBaseURL", "http://localhost:5173")
	v.SetDefault("defaultFromEmail", "Paatthya <noreply@localhost>")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("storage.backend", StorageMemory)
	v.SetDefault("firebase.projectId", "")
	v.SetDefault("firebase.credentialsFile", "")
	v.SetDefault("firebase.credentialsJSON", "")
	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "paatthya")
	v.SetDefault("database.user", "paatthya")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.disableTLS", env == "DEV" || env == "TEST")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.debugHost", "localhost:4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("server.jwtRefreshExpirationDelta", 4*time.Hour)

	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	from, err := mail.ParseAddress(v.GetString("defaultFromEmail"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing defaultFromEmail")
	}

	conf := &Config{
		Build:            v.GetString("build"),
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		AppName:          v.GetString("appName"),
		SecretKey:        v.GetString("secretKey"),
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		DefaultFromEmail: *from,
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		WorkDir:          wd,
		Storage: StorageConfig{
			Backend: strings.ToLower(v.GetString("storage.backend")),
		},
		Firebase: FirebaseConfig{
			ProjectID:       v.GetString("firebase.projectId"),
			CredentialsFile: v.GetString("firebase.credentialsFile"),
			CredentialsJSON: v.GetString("firebase.credentialsJSON"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("database.engine"),
			Host:          v.GetString("database.host"),
			Port:          v.GetString("database.port"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			DisableTLS:    v.GetBool("database.disableTLS"),
		},
		Server: ServerConfig{
			Host:                      v.GetString("server.host"),
			Port:                      v.GetString("server.port"),
			DebugHost:                 v.GetString("server.debugHost"),
			ReadTimeout:               v.GetDuration("server.readTimeout"),
			WriteTimeout:              v.GetDuration("server.writeTimeout"),
			ShutdownTimeout:           v.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta:        v.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: v.GetDuration("server.jwtRefreshExpirationDelta"),
		},
	}
	if err := conf.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return conf, nil
}

// NewTestConfig returns a Config suitable for tests: in-memory storage, TEST mode.
func NewTestConfig() *Config {
	return &Config{
		Build:            "test",
		Env:              "TEST",
		TestMode:         true,
		AppName:          "Paatthya",
		SecretKey:        "test-secret",
		FrontendBaseURL:  "http://localhost:5173",
		DefaultFromEmail: mail.Address{Name: "Paatthya", Address: "noreply@localhost"},
		Storage:          StorageConfig{Backend: StorageMemory},
		Server: ServerConfig{
			Port:                      "8000",
			ShutdownTimeout:           time.Second,
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: time.Hour,
		},
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (%s) env=%s storage=%s", c.AppName, c.Build, c.Env, c.Storage.Backend)
}
