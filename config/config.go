// Package config registers kipdayo's settings with viper and loads them from
// defaults, a TOML file, a .env file and the environment.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to env var suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnv is the file loaded from the working directory before env binding.
const DotEnv = ".env"

// Setup loads configuration. Later sources override earlier ones:
// defaults, config file, .env, process environment.
func Setup() error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}
	viper.MustBindEnv(key.AuthSessdata)

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// loadDotEnv never overrides variables already set in the process.
func loadDotEnv() error {
	exists, err := filesystem.API().Exists(DotEnv)
	if err != nil || !exists {
		return err
	}

	f, err := filesystem.API().Open(DotEnv)
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return err
	}

	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	return nil
}
