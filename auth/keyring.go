// Package auth stores the SESSDATA token and decides which token a request uses.
package auth

import (
	"errors"
	"strings"

	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/log"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const user = "sessdata"

// Source names where a token came from.
type Source string

const (
	FromFlag      Source = "flag"
	FromEnv       Source = "env"
	FromKeyring   Source = "keyring"
	FromAnonymous Source = "anonymous"
)

// Set stores token in the OS keyring.
func Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(constant.App, user, token)
}

// Get returns the stored token.
func Get() (string, error) {
	return keyring.Get(constant.App, user)
}

// Clear removes the stored token. A missing token is not an error.
func Clear() error {
	if err := keyring.Delete(constant.App, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// Stored reports whether a token is present in the keyring.
func Stored() bool {
	token, err := Get()
	return err == nil && token != ""
}

// Sessdata picks the token for one resolution: flag, then the KIPDAYO_SESSDATA
// env var, then the keyring when auth.keyring is on. Blank values are skipped.
func Sessdata(flag mo.Option[string]) (string, Source) {
	if token, ok := flag.Get(); ok && strings.TrimSpace(token) != "" {
		return token, FromFlag
	}

	if token := viper.GetString(key.AuthSessdata); strings.TrimSpace(token) != "" {
		return token, FromEnv
	}

	if viper.GetBool(key.AuthKeyring) {
		token, err := Get()
		switch {
		case err == nil && strings.TrimSpace(token) != "":
			return token, FromKeyring
		case err != nil && !errors.Is(err, keyring.ErrNotFound):
			log.Warnf("keyring unavailable: %s", err)
		}
	}

	return "", FromAnonymous
}
