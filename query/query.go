// Package query remembers resolved video identifiers and suggests them for
// shell completion. Only identifiers are stored, never URLs or tokens.
package query

import (
	"strings"
	"sync"

	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank int    `json:"rank"`
	ID   string `json:"id"`
}

var (
	mu     sync.Mutex
	cacher = sync.OnceValue(func() *gache.Cache[map[string]*record] {
		return gache.New[map[string]*record](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
)

func load() map[string]*record {
	cached, expired, err := cacher().Get()
	if err != nil || expired || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember bumps the rank of id. It is a no-op when history.remember is off.
func Remember(id string) error {
	if !viper.GetBool(key.HistoryRemember) || id == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if r, ok := records[id]; ok {
		r.Rank++
	} else {
		records[id] = &record{Rank: 1, ID: id}
	}

	return cacher().Set(records)
}

// Suggest returns remembered identifiers fuzzily matching prefix, most used first.
func Suggest(prefix string) []string {
	mu.Lock()
	records := lo.Values(load())
	mu.Unlock()

	prefix = strings.TrimSpace(prefix)
	matched := lo.Filter(records, func(r *record, _ int) bool {
		return fuzzy.MatchFold(prefix, r.ID)
	})

	slices.SortFunc(matched, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.ID, b.ID)
	})

	return lo.Map(matched, func(r *record, _ int) string {
		return r.ID
	})
}

// Forget drops every remembered identifier.
func Forget() error {
	mu.Lock()
	defer mu.Unlock()
	return cacher().Set(make(map[string]*record))
}
