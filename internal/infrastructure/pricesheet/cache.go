package pricesheet

import (
	"context"
	"log"
	"sync"
	"time"

	"granite_estimator/internal/domain/entities"

	"golang.org/x/sync/singleflight"
)

const refreshKey = "price-list"

// CachedProvider keeps the last successfully loaded list for ttl. A ttl of
// zero fetches on every call. A failed refresh is returned to the caller; the
// stale list is not served in its place.
//
// Concurrent callers that miss the cache share one fetch, and the fetch runs
// without holding mu.
type CachedProvider struct {
	source Source
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group

	mu       sync.Mutex
	list     *entities.PriceList
	loadedAt time.Time
}

func NewCachedProvider(source Source, ttl time.Duration) *CachedProvider {
	return &CachedProvider{source: source, ttl: ttl, now: time.Now}
}

func (p *CachedProvider) Load(ctx context.Context) (*entities.PriceList, error) {
	if list := p.cached(); list != nil {
		return list, nil
	}

	v, err, _ := p.group.Do(refreshKey, func() (interface{}, error) {
		// a flight that finished since the check above may have filled the cache
		if list := p.cached(); list != nil {
			return list, nil
		}
		list, err := p.source.Load(ctx)
		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.list = nil
			return nil, err
		}
		for _, w := range list.Warnings {
			log.Printf("[pricesheet][cache] warning: %s", w)
		}
		p.list = list
		p.loadedAt = p.now()
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.PriceList), nil
}

func (p *CachedProvider) cached() *entities.PriceList {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.list != nil && p.ttl > 0 && p.now().Sub(p.loadedAt) < p.ttl {
		return p.list
	}
	return nil
}
