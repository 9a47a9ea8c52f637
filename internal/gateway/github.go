// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Repository is the subset of repository metadata the aggregation needs.
type Repository struct {
	FullName string
	Name     string
	Owner    string
	Private  bool
	Language string
	Stars    int
	Forks    int
}

// RepoActivity sums contributor weekly activity over a repository's full history.
type RepoActivity struct {
	Additions int
	Deletions int
	Commits   int
}

// RepoTotals holds all-time pull request and issue counts for a repository.
type RepoTotals struct {
	PullRequests int
	Issues       int
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	ListRepositories(ctx context.Context, org string) ([]Repository, error)
	FetchRepoActivity(ctx context.Context, owner, name string) (RepoActivity, error)
	FetchRepoTotals(ctx context.Context, owner, name string) (RepoTotals, error)
	CountMembers(ctx context.Context, org string) (int, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger

	// Contributor statistics are computed asynchronously by GitHub; the
	// endpoint answers 202 until the numbers are ready.
	statsAttempts  int
	statsRetryWait time.Duration
}

const (
	defaultStatsAttempts  = 3
	defaultStatsRetryWait = 1 * time.Second
)

// repoTotalsQuery mirrors the GraphQL shape for all-time PR and issue counts.
type repoTotalsQuery struct {
	Repository struct {
		PullRequests struct {
			TotalCount int
		}
		Issues struct {
			TotalCount int
		}
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client, which still serves public
// organization data at a lower rate limit.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport}
	return &GitHubGateway{
		restClient:     github.NewClient(httpClient),
		graphqlClient:  githubv4.NewClient(httpClient),
		logger:         logger,
		statsAttempts:  defaultStatsAttempts,
		statsRetryWait: defaultStatsRetryWait,
	}, nil
}

// ListRepositories fetches every repository of the organization, private ones
// included when the token grants access.
func (g *GitHubGateway) ListRepositories(ctx context.Context, org string) ([]Repository, error) {
	g.logger.Debug("Fetching repository list using REST API...")
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var repositories []Repository
	for {
		repos, resp, err := g.restClient.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", org, err)
		}
		for _, repo := range repos {
			repositories = append(repositories, Repository{
				FullName: repo.GetFullName(),
				Name:     repo.GetName(),
				Owner:    repo.GetOwner().GetLogin(),
				Private:  repo.GetPrivate(),
				Language: repo.GetLanguage(),
				Stars:    repo.GetStargazersCount(),
				Forks:    repo.GetForksCount(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Debug("  Fetching next page of repositories...")
	}
	g.logger.Debugf("Completed fetching repository list: %d repositories", len(repositories))
	return repositories, nil
}

// FetchRepoActivity sums additions, deletions, and commit counts across every
// contributor week of the repository. While GitHub is still computing the
// statistics the call retries a bounded number of times, then gives up so the
// caller can count the repository as zero.
func (g *GitHubGateway) FetchRepoActivity(ctx context.Context, owner, name string) (RepoActivity, error) {
	var lastErr error
	for attempt := 0; attempt < g.statsAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return RepoActivity{}, ctx.Err()
			case <-time.After(g.statsRetryWait):
			}
		}
		contributors, _, err := g.restClient.Repositories.ListContributorsStats(ctx, owner, name)
		if err != nil {
			var accepted *github.AcceptedError
			if errors.As(err, &accepted) {
				g.logger.Debugf("  %s/%s: contributor stats still computing (attempt %d/%d)", owner, name, attempt+1, g.statsAttempts)
				lastErr = err
				continue
			}
			return RepoActivity{}, fmt.Errorf("failed to fetch contributor stats for %s/%s: %w", owner, name, err)
		}
		var activity RepoActivity
		for _, contributor := range contributors {
			for _, week := range contributor.Weeks {
				activity.Additions += week.GetAdditions()
				activity.Deletions += week.GetDeletions()
				activity.Commits += week.GetCommits()
			}
		}
		return activity, nil
	}
	return RepoActivity{}, fmt.Errorf("contributor stats for %s/%s not ready after %d attempts: %w", owner, name, g.statsAttempts, lastErr)
}

// FetchRepoTotals queries all-time pull request and issue counts in a single
// GraphQL round trip.
func (g *GitHubGateway) FetchRepoTotals(ctx context.Context, owner, name string) (RepoTotals, error) {
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}
	var q repoTotalsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return RepoTotals{}, fmt.Errorf("failed to execute GraphQL query for %s/%s totals: %w", owner, name, err)
	}
	return RepoTotals{
		PullRequests: q.Repository.PullRequests.TotalCount,
		Issues:       q.Repository.Issues.TotalCount,
	}, nil
}

// CountMembers counts the organization's members. An unauthenticated client
// sees public members only.
func (g *GitHubGateway) CountMembers(ctx context.Context, org string) (int, error) {
	g.logger.Debug("Counting organization members...")
	opts := &github.ListMembersOptions{ListOptions: github.ListOptions{PerPage: 100}}
	count := 0
	for {
		members, resp, err := g.restClient.Organizations.ListMembers(ctx, org, opts)
		if err != nil {
			return 0, fmt.Errorf("failed to list members of %s: %w", org, err)
		}
		count += len(members)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return count, nil
}
