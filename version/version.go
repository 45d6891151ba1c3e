// Package version compares kipdayo releases and looks up the latest one.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/network"
	"github.com/kipdayo/kipdayo/util"
	"github.com/kipdayo/kipdayo/where"
	"github.com/metafates/gache"
)

// ReleasesURL is queried for the latest release tag.
var ReleasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var cacher = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       where.VersionCache(),
		Lifetime:   48 * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})
})

// Latest returns the newest released version without the "v" prefix.
// Results are cached for two days.
func Latest(ctx context.Context) (string, error) {
	if ver, expired, err := cacher().Get(); err == nil && !expired && ver != "" {
		return ver, nil
	}

	client, err := network.NewClient(network.Options{Timeout: 10 * time.Second})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: unexpected status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver := strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(ver)
	return ver, nil
}

// Compare returns 1 if a > b, -1 if a < b and 0 if they are equal.
func Compare(a, b string) (int, error) {
	parse := func(s string) (v [3]int, err error) {
		_, err = fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2])
		return
	}

	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", a, err)
	}

	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", b, err)
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}
