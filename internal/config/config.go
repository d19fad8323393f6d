package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "spacehub-backend/internal/util/env"
	"spacehub-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" env-required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     env-required:"true"`

	HTTPPort    string `env:"HTTP_PORT"    env-default:"4010"`
	HTTPSPort   string `env:"HTTPS_PORT"   env-default:"4443"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS" env-default:"false"`

	DataFolder    string
	SecretKeyPath string
	CertsDir      string
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// tests run from package directories, so walk up to the module root
	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	var loaded bool
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			loaded = true
			break
		}
	}

	if !loaded {
		log.Error("Error loading .env file: could not find .env in any location")
		os.Exit(1)
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	env.DataFolder = filepath.Join(filepath.Dir(backendRoot), "spacehub-data")
	env.SecretKeyPath = filepath.Join(env.DataFolder, "secret.key")
	env.CertsDir = filepath.Join(env.DataFolder, "certs")

	log.Info("Environment variables loaded successfully!")
}
