package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// Service renders a bounded factual text block describing the configured
// user's most relevant repositories, for injection into chat completions.
type Service interface {
	Context(ctx context.Context) (string, error)
}

type Config struct {
	Username    string
	TopRepos    int // repositories included in the context, default 10
	ReadmeLimit int // README character budget per repository, default 2000
}

// readmeRefs are the default-branch conventions tried in order; the first
// non-empty README wins.
var readmeRefs = []string{"main", "master"}

type service struct {
	github Client
	cache  Cache
	cfg    Config
}

func NewService(github Client, cache Cache, cfg Config) Service {
	if cfg.TopRepos == 0 {
		cfg.TopRepos = 10
	}
	if cfg.ReadmeLimit == 0 {
		cfg.ReadmeLimit = 2000
	}
	return &service{github: github, cache: cache, cfg: cfg}
}

func (s *service) Context(ctx context.Context) (string, error) {
	if text, ok := s.cache.Get(ctx); ok {
		return text, nil
	}

	start := time.Now()
	text, err := s.build(ctx)
	if err != nil {
		return "", err
	}

	s.cache.Set(ctx, text)
	slog.InfoContext(ctx, "profile context rebuilt",
		"user", s.cfg.Username,
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds())
	return text, nil
}

func (s *service) build(ctx context.Context) (string, error) {
	repos, err := s.github.ListRepositories(ctx, s.cfg.Username)
	if err != nil {
		return "", fmt.Errorf("building profile context: %w", err)
	}

	top := Rank(repos, s.cfg.TopRepos)

	blocks := make([]string, 0, len(top))
	for _, repo := range top {
		readme := s.fetchReadme(ctx, repo.Name)
		blocks = append(blocks, renderRepository(repo, readme, s.cfg.ReadmeLimit))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# GitHub Live Context (user: %s)\n", s.cfg.Username)
	fmt.Fprintf(&b, "This section is generated in real time from the GitHub API. Use it as the factual source about %s's repositories.\n\n", s.cfg.Username)
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
	return b.String(), nil
}

// fetchReadme tries the conventional default-branch locations in order.
// Failures degrade to "not found" for this one repository; they never abort
// the rebuild.
func (s *service) fetchReadme(ctx context.Context, repo string) string {
	for _, ref := range readmeRefs {
		body, err := s.github.FetchRawFile(ctx, s.cfg.Username, repo, ref, "README.md")
		if err != nil {
			slog.DebugContext(ctx, "readme fetch failed",
				"repo", repo, "ref", ref, "error", err)
			continue
		}
		if body != "" {
			return body
		}
	}
	return ""
}

func renderRepository(r Repository, readme string, limit int) string {
	desc := r.Description
	if desc == "" {
		desc = "no description"
	}
	lang := r.Language
	if lang == "" {
		lang = "n/a"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "• %s — %s\n", r.Name, desc)
	fmt.Fprintf(&b, "  URL: %s\n", r.URL)
	fmt.Fprintf(&b, "  Lang: %s | ⭐ %d | 🍴 %d", lang, r.Stars, r.Forks)
	if len(r.Topics) > 0 {
		fmt.Fprintf(&b, " | topics: %s", strings.Join(r.Topics, ", "))
	}
	b.WriteString("\n")

	if readme == "" {
		b.WriteString("  README: (not found)")
	} else {
		b.WriteString("  README:\n")
		b.WriteString(indent(truncate(readme, limit), "  "))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back up to a rune boundary so the cut never splits a multi-byte
	// character.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n…(truncated)…"
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
