package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/kipdayo/kipdayo/bilibili"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/network"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Validate checks the loaded settings that the resolver depends on and
// returns every problem found.
func Validate() error {
	var errs []error

	if mode, modes := viper.GetString(key.ResolveMode), bilibili.Modes(); !lo.Contains(modes, mode) {
		errs = append(errs, fmt.Errorf("%s: unknown mode %q, expected one of %v", key.ResolveMode, mode, modes))
	}

	if fp, fingerprints := network.Fingerprint(viper.GetString(key.NetworkFingerprint)), network.Fingerprints(); !lo.Contains(fingerprints, fp) {
		errs = append(errs, fmt.Errorf("%s: unknown fingerprint %q, expected one of %v", key.NetworkFingerprint, fp, fingerprints))
	}

	for _, k := range []string{key.ResolveTimeout, key.ResolveQuality} {
		if viper.GetInt(k) <= 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive", k))
		}
	}

	for _, k := range []string{key.APIBaseURL, key.APISiteURL} {
		raw := viper.GetString(k)
		if raw == "" {
			errs = append(errs, fmt.Errorf("%s: must not be empty", k))
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s: %q is not an absolute URL", k, raw))
		}
	}

	return errors.Join(errs...)
}
