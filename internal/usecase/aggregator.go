// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/codeswhat/orgcard/internal/domain"
	"github.com/codeswhat/orgcard/internal/gateway"
)

// ErrUnavailable marks a run where the stats source could not be reached at
// all. Per-repository failures never produce it; they degrade to zero.
var ErrUnavailable = errors.New("stats source unavailable")

// SnapshotStore persists the stats snapshot between runs.
type SnapshotStore interface {
	Load() (*domain.Snapshot, error)
	Save(stats domain.OrgStats) error
}

// Aggregator is the use case for aggregating organization stats.
// It folds gateway data into a single immutable OrgStats record.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate fetches and folds live statistics for the organization. Every
// call to the gateway runs strictly in sequence, so the total run time is
// linear in the repository count.
//
// Only a failed repository listing makes the whole fetch unavailable; a
// repository whose activity or totals cannot be fetched contributes zero,
// because partial data beats none and the snapshot merge compensates for
// undercounting.
func (a *Aggregator) Aggregate(ctx context.Context, org string) (domain.OrgStats, error) {
	a.logger.Debugf("Aggregating stats for organization %s...", org)

	repos, err := a.fetcher.ListRepositories(ctx, org)
	if err != nil {
		return domain.ZeroStats(), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	stats := domain.ZeroStats()
	languages := make(map[string]struct{})
	for _, repo := range repos {
		stats.TotalRepos++
		if repo.Private {
			stats.PrivateRepos++
		} else {
			stats.PublicRepos++
		}
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
		if repo.Language != "" {
			languages[repo.Language] = struct{}{}
		}
	}
	for lang := range languages {
		stats.Languages = append(stats.Languages, lang)
	}
	sort.Strings(stats.Languages)

	for _, repo := range repos {
		activity, err := a.fetcher.FetchRepoActivity(ctx, repo.Owner, repo.Name)
		if err != nil {
			a.logger.Warnf("Counting %s as zero activity: %v", repo.FullName, err)
		} else {
			stats.LOCAdded += activity.Additions
			stats.LOCDeleted += activity.Deletions
			stats.TotalCommits += activity.Commits
		}

		totals, err := a.fetcher.FetchRepoTotals(ctx, repo.Owner, repo.Name)
		if err != nil {
			a.logger.Warnf("Counting %s as zero PRs and issues: %v", repo.FullName, err)
		} else {
			stats.TotalPRs += totals.PullRequests
			stats.TotalIssues += totals.Issues
		}
	}
	stats.LOCTotal = stats.LOCAdded - stats.LOCDeleted
	if stats.LOCTotal < 0 {
		stats.LOCTotal = 0
	}

	members, err := a.fetcher.CountMembers(ctx, org)
	if err != nil {
		a.logger.Warnf("Counting members as zero: %v", err)
	} else {
		stats.Members = members
	}

	a.logger.Debugf("Aggregation complete: %d repositories", stats.TotalRepos)
	return stats, nil
}

// Merged aggregates live stats and ratchet-merges them with the stored
// snapshot. A corrupt snapshot counts as missing. When the source is
// unavailable the cached stats are returned as-is, falling back to the zero
// record on a cache-less first run; the caller still gets a renderable result.
func (a *Aggregator) Merged(ctx context.Context, org string, store SnapshotStore) (domain.OrgStats, error) {
	snapshot, err := store.Load()
	if err != nil {
		a.logger.Warnf("Discarding unreadable stats snapshot: %v", err)
		snapshot = nil
	}
	var cached *domain.OrgStats
	if snapshot != nil {
		cached = &snapshot.Org
	}

	live, err := a.Aggregate(ctx, org)
	if err != nil {
		a.logger.Warnf("Falling back to cached stats: %v", err)
		if cached != nil {
			return *cached, nil
		}
		return domain.ZeroStats(), nil
	}
	return domain.Merge(live, cached), nil
}

// Refresh runs Merged and persists the result as the next snapshot. Unlike
// the fetch path, a failed save is fatal: silently losing the ratchet
// baseline would let published numbers regress on the next run.
func (a *Aggregator) Refresh(ctx context.Context, org string, store SnapshotStore) (domain.OrgStats, error) {
	stats, err := a.Merged(ctx, org, store)
	if err != nil {
		return stats, err
	}
	if err := store.Save(stats); err != nil {
		return stats, fmt.Errorf("persisting stats snapshot: %w", err)
	}
	return stats, nil
}
