package seed

import (
	"testing"

	"github.com/campusgig/campusgig-backend/internal/constants"
)

func TestAdminAssignmentsReferenceSeedData(t *testing.T) {
	usernames := make(map[string]bool, len(Users))
	for _, u := range Users {
		usernames[u.Username] = true
	}
	roles := make(map[string]bool, len(constants.Roles))
	for _, r := range constants.Roles {
		roles[r.Name] = true
	}

	if len(AdminAssignments) != 3 {
		t.Fatalf("expected exactly 3 admin assignments, got %d", len(AdminAssignments))
	}
	for username, role := range AdminAssignments {
		if !usernames[username] {
			t.Errorf("admin username %q is not a seed user", username)
		}
		if !roles[role] {
			t.Errorf("admin role %q is not in the role catalog", role)
		}
	}
}

func TestSeedUsersAreUnique(t *testing.T) {
	emails := make(map[string]bool, len(Users))
	usernames := make(map[string]bool, len(Users))
	for _, u := range Users {
		if emails[u.Email] {
			t.Errorf("duplicate seed email %q", u.Email)
		}
		if usernames[u.Username] {
			t.Errorf("duplicate seed username %q", u.Username)
		}
		emails[u.Email] = true
		usernames[u.Username] = true
	}
}

func TestProfileTemplatesExerciseSkillDedup(t *testing.T) {
	// The templates must keep feeding the dedup cases the skill seeder is
	// specified against: a Latin casing pair and a distinct Arabic pair.
	var skills []string
	for _, template := range ProfileTemplates {
		skills = append(skills, template.Skills...)
	}

	counters := tallyUsage(skills)
	byName := make(map[string]int, len(counters))
	for _, c := range counters {
		byName[c.Name] = c.Count
	}

	if byName["Python"] < 2 {
		t.Errorf("expected Python/python to fold into one counter with count >= 2, got %d", byName["Python"])
	}
	if _, dup := byName["python"]; dup {
		t.Error("lowercase python should have folded into Python")
	}
	if byName["برمجة"] != 1 || byName["البرمجة"] != 1 {
		t.Error("distinct Arabic skills must stay separate counters")
	}
}
