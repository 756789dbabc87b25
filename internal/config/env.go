package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnvFile loads envs/.env.<GO_ENV> (GO_ENV defaults to dev) from the working
// directory, falling back to envs/.env. Variables already set are not overridden.
func LoadEnvFile(log *logrus.Logger) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err == nil {
		log.Infof("Environment loaded from file %s", envFile)
		return
	}

	defaultEnvFile := filepath.Join(execDir, "envs", ".env")
	if err := godotenv.Load(defaultEnvFile); err != nil {
		log.Warnf("Could not load environment file %s or %s", envFile, defaultEnvFile)
		return
	}
	log.Infof("Environment loaded from default file %s", defaultEnvFile)
}
