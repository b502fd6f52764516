package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Floor per provider so small pages still give deduplication overlap.
	minPerProvider  = 5
	maxConcurrency  = 3
	defaultCacheTTL = 30 * time.Minute
)

// Aggregator fans a search out to every configured provider and merges what
// comes back. It satisfies domain.JobSearcher: provider failures degrade to
// synthetic postings, never to an error. The Redis client is optional; with
// one present, merged pages are cached for cacheTTL.
type Aggregator struct {
	providers []Provider
	cache     *redis.Client
	cacheTTL  time.Duration
}

func NewAggregator(providers []Provider, cache *redis.Client, cacheTTL time.Duration) *Aggregator {
	configured := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p.IsConfigured() {
			configured = append(configured, p)
		}
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Aggregator{providers: configured, cache: cache, cacheTTL: cacheTTL}
}

func (a *Aggregator) IsConfigured() bool { return len(a.providers) > 0 }

func (a *Aggregator) Search(ctx context.Context, keywords []string, location string, limit int) []domain.JobPosting {
	if !a.IsConfigured() {
		return mockPostings(keywords)
	}

	cacheKey := searchCacheKey(keywords, location, limit)
	if cached, ok := a.fromCache(ctx, cacheKey); ok {
		return cached
	}

	perProvider := max(minPerProvider, limit)

	var mu sync.Mutex
	var all []domain.JobPosting

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrency)
	for _, provider := range a.providers {
		g.Go(func() error {
			jobs, err := provider.Search(ctx, keywords, location, perProvider)
			if err != nil {
				logger.Log.Warn("job provider failed", "provider", provider.Name(), "error", err)
				return nil
			}
			mu.Lock()
			all = append(all, jobs...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	merged := dedupeByURL(all)
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].DaysAgo < merged[j].DaysAgo })

	if len(merged) == 0 {
		logger.Log.Warn("no live jobs from any provider, serving mock postings")
		return mockPostings(keywords)
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}

	a.store(ctx, cacheKey, merged)
	return merged
}

// dedupeByURL keeps one posting per apply URL: the first occurrence holds
// its position, the last one wins the slot. Colliding URLs mean the same
// posting arrived from two boards.
func dedupeByURL(jobs []domain.JobPosting) []domain.JobPosting {
	index := make(map[string]int, len(jobs))
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if at, ok := index[job.ApplyURL]; ok {
			out[at] = job
			continue
		}
		index[job.ApplyURL] = len(out)
		out = append(out, job)
	}
	return out
}

func searchCacheKey(keywords []string, location string, limit int) string {
	return fmt.Sprintf("jobsearch:%s|%s|%d",
		strings.ToLower(strings.Join(keywords, ",")), strings.ToLower(location), limit)
}

func (a *Aggregator) fromCache(ctx context.Context, key string) ([]domain.JobPosting, bool) {
	if a.cache == nil {
		return nil, false
	}
	raw, err := a.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Debug("job cache read failed", "error", err)
		}
		return nil, false
	}
	var jobs []domain.JobPosting
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		return nil, false
	}
	return jobs, true
}

func (a *Aggregator) store(ctx context.Context, key string, jobs []domain.JobPosting) {
	if a.cache == nil {
		return
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, raw, a.cacheTTL).Err(); err != nil {
		logger.Log.Debug("job cache write failed", "error", err)
	}
}
