package aggregator

import (
	"sync"

	"go-tripsentry/cache"
	"go-tripsentry/gazetteer"
	"go-tripsentry/scoring"
	"go-tripsentry/types"
)

const nearbyLimit = 3

// Options trims the assessment to what the caller asked for. Sources
// excluded here are still reported in MissingSources because they were not
// used in scoring.
type Options struct {
	IncludeConflict bool
	IncludeNews     bool
}

// Aggregator ties the resolver, cache and scoring engine together.
type Aggregator struct {
	Gazetteer *gazetteer.Gazetteer
	Cache     *cache.Cache
}

func New(g *gazetteer.Gazetteer, c *cache.Cache) *Aggregator {
	return &Aggregator{Gazetteer: g, Cache: c}
}

// Assess fetches whatever subset of the four sources is obtainable for loc
// and scores it. The assessment is built fresh on every call; only its
// inputs are cached.
func (a *Aggregator) Assess(loc types.Location, opts Options) types.CompositeAssessment {
	var (
		advisory  *types.AdvisoryRecord
		secondary *types.SecondaryAdvisoryRecord
		conflict  *types.ConflictRecord
		sentiment *types.SentimentRecord
	)

	// Independent sources fetch concurrently; each branch degrades on its
	// own and never aborts a sibling.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if rec, ok := a.Cache.Advisory(loc); ok {
			advisory = rec
		}
	}()
	go func() {
		defer wg.Done()
		if rec, ok := a.Cache.Secondary(loc); ok {
			secondary = rec
		}
	}()

	if opts.IncludeConflict {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rec, ok := a.Cache.Conflict(loc); ok {
				conflict = rec
			}
		}()
	}
	if opts.IncludeNews {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rec, ok := a.Cache.Sentiment(loc); ok {
				sentiment = rec
			}
		}()
	}
	wg.Wait()

	missing := []string{}
	if advisory == nil {
		missing = append(missing, string(cache.SourceAdvisory))
	}
	if conflict == nil {
		missing = append(missing, string(cache.SourceConflict))
	}
	if sentiment == nil {
		missing = append(missing, string(cache.SourceSentiment))
	}

	score := scoring.Score(advisory, conflict, sentiment)

	return types.CompositeAssessment{
		Location:          loc,
		Advisory:          advisory,
		SecondaryAdvisory: secondary,
		Conflict:          conflict,
		Sentiment:         sentiment,
		Score:             score,
		Label:             scoring.Label(score),
		MissingSources:    missing,
		Nearby:            a.Gazetteer.Nearby(loc, nearbyLimit),
	}
}
