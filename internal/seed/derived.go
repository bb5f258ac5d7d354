package seed

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Job titles and skills are not fixture catalogs; they are denormalized usage
// counters derived from the academic profiles already seeded.

var latinAlnum = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

// normalizeUsageKey lowercases Latin-alphanumeric strings for deduplication.
// Non-Latin strings are keyed as-is, case-sensitive, so scripts without a
// trivial case mapping are never mangled. Known asymmetry, kept on purpose.
func normalizeUsageKey(value string) string {
	trimmed := strings.TrimSpace(value)
	if latinAlnum.MatchString(trimmed) {
		return strings.ToLower(trimmed)
	}
	return trimmed
}

type usageCounter struct {
	Name  string
	Count int
}

// tallyUsage counts values by normalized key. The display name keeps the
// first-seen casing and counters come back in first-seen order.
func tallyUsage(values []string) []usageCounter {
	index := make(map[string]int)
	var counters []usageCounter

	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := normalizeUsageKey(trimmed)
		if i, ok := index[key]; ok {
			counters[i].Count++
			continue
		}
		index[key] = len(counters)
		counters = append(counters, usageCounter{Name: trimmed, Count: 1})
	}
	return counters
}

func (s *Seeder) upsertUsageCounters(ctx context.Context, table string, counters []usageCounter) {
	for _, counter := range counters {
		builder := s.SQL.Insert(table).
			Columns("id", "name", "usage_count").
			Values(uuid.New(), counter.Name, counter.Count).
			Suffix("ON CONFLICT (name) DO UPDATE SET usage_count = EXCLUDED.usage_count")

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("table", table).Str("name", counter.Name).Msg("failed to upsert usage counter")
		}
	}
}

func (s *Seeder) SeedJobTitles(ctx context.Context) error {
	academicUsers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 0)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(academicUsers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping job titles")
		return nil
	}

	titles := lo.Map(academicUsers, func(a repository.AcademicUser, _ int) string {
		return a.JobTitle
	})
	s.upsertUsageCounters(ctx, "job_titles", tallyUsage(titles))
	return nil
}

func (s *Seeder) SeedSkills(ctx context.Context) error {
	academicUsers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 0)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(academicUsers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping skills")
		return nil
	}

	var skills []string
	for _, academicUser := range academicUsers {
		skills = append(skills, academicUser.Skills...)
	}
	s.upsertUsageCounters(ctx, "skills", tallyUsage(skills))
	return nil
}
