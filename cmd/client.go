package cmd

import (
	"time"

	"github.com/kipdayo/kipdayo/bilibili"
	"github.com/kipdayo/kipdayo/config"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/network"
	"github.com/spf13/viper"
)

// newClient builds a resolver from the loaded configuration.
func newClient() (*bilibili.Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cdn := bilibili.CDN{
		MirrorHost:  viper.GetString(key.MirrorHost),
		MirrorLabel: viper.GetString(key.MirrorLabel),
	}

	strategy, err := bilibili.NewStrategy(viper.GetString(key.ResolveMode), cdn)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(viper.GetInt(key.ResolveTimeout)) * time.Second

	httpClient, err := network.NewClient(network.Options{
		Fingerprint: network.Fingerprint(viper.GetString(key.NetworkFingerprint)),
	})
	if err != nil {
		return nil, err
	}

	return bilibili.New(bilibili.Options{
		APIBase:    viper.GetString(key.APIBaseURL),
		SiteBase:   viper.GetString(key.APISiteURL),
		Timeout:    timeout,
		Quality:    viper.GetInt(key.ResolveQuality),
		Strategy:   strategy,
		HTTPClient: httpClient,
	}), nil
}
