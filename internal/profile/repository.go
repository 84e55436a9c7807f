package profile

import (
	"sort"
	"time"
)

// Repository is a transient snapshot of one repository from the upstream
// listing. It only lives for the duration of a context rebuild.
type Repository struct {
	Name        string
	URL         string
	Description string
	Language    string
	Stars       int
	Forks       int
	Topics      []string
	UpdatedAt   time.Time
}

// Rank returns the n most relevant repositories: star count descending,
// ties broken by most recent update. The input slice is not modified.
func Rank(repos []Repository, n int) []Repository {
	ranked := make([]Repository, len(repos))
	copy(ranked, repos)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Stars != ranked[j].Stars {
			return ranked[i].Stars > ranked[j].Stars
		}
		return ranked[i].UpdatedAt.After(ranked[j].UpdatedAt)
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
