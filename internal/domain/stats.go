// Package domain contains the core data structures and domain logic for the application.
package domain

// OrgStats holds the aggregated statistics for a GitHub organization.
// It is the core domain entity of this application; the JSON field names
// double as the cache wire format.
type OrgStats struct {
	PublicRepos  int      `json:"public_repos"`
	PrivateRepos int      `json:"private_repos"`
	TotalRepos   int      `json:"total_repos"`
	TotalStars   int      `json:"total_stars"`
	TotalForks   int      `json:"total_forks"`
	TotalCommits int      `json:"total_commits"`
	TotalPRs     int      `json:"total_prs"`
	TotalIssues  int      `json:"total_issues"`
	Members      int      `json:"members"`
	LOCAdded     int      `json:"loc_added"`
	LOCDeleted   int      `json:"loc_deleted"`
	LOCTotal     int      `json:"loc_total"`
	Languages    []string `json:"languages"`
}

// ZeroStats returns an OrgStats with every counter at zero and an empty
// non-nil language list, so the JSON form stays `[]` rather than `null`.
func ZeroStats() OrgStats {
	return OrgStats{Languages: []string{}}
}

// Snapshot is the persisted, timestamped copy of the last computed stats.
type Snapshot struct {
	Timestamp string   `json:"timestamp"`
	Org       OrgStats `json:"org"`
}

// Merge combines freshly fetched stats with a previously cached record.
// The result equals live in every field except the cumulative counters,
// which never go down: a live fetch may under-report after rate limits or
// partial outages, and published totals must not visibly regress between
// runs. A nil cached record leaves live unchanged.
func Merge(live OrgStats, cached *OrgStats) OrgStats {
	if cached == nil {
		return live
	}
	merged := live
	merged.TotalCommits = max(live.TotalCommits, cached.TotalCommits)
	merged.TotalPRs = max(live.TotalPRs, cached.TotalPRs)
	merged.TotalIssues = max(live.TotalIssues, cached.TotalIssues)
	merged.LOCAdded = max(live.LOCAdded, cached.LOCAdded)
	merged.LOCDeleted = max(live.LOCDeleted, cached.LOCDeleted)
	merged.LOCTotal = max(live.LOCTotal, cached.LOCTotal)
	return merged
}
