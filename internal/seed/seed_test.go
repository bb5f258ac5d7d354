package seed

import (
	"testing"
)

func TestStepOrderIsTopological(t *testing.T) {
	s := &Seeder{}
	steps := s.Steps()
	if len(steps) == 0 {
		t.Fatal("expected a non-empty pipeline")
	}

	seen := make(map[string]bool, len(steps))
	for _, step := range steps {
		if seen[step.Name] {
			t.Fatalf("duplicate step name %q", step.Name)
		}
		for _, dep := range step.DependsOn {
			if !seen[dep] {
				t.Fatalf("step %q depends on %q, which does not run before it", step.Name, dep)
			}
		}
		seen[step.Name] = true
	}
}

func TestStepsHaveRunFuncs(t *testing.T) {
	s := &Seeder{}
	for _, step := range s.Steps() {
		if step.Run == nil {
			t.Fatalf("step %q has no run function", step.Name)
		}
	}
}

func TestClearOrderCoversEverySeededTable(t *testing.T) {
	cleared := make(map[string]bool, len(clearOrder))
	for _, table := range clearOrder {
		if cleared[table] {
			t.Fatalf("table %q listed twice in clear order", table)
		}
		cleared[table] = true
	}

	// Step names double as table names; the two companion timeline tables
	// are written by the custom_requests and service_purchases steps.
	s := &Seeder{}
	for _, step := range s.Steps() {
		if !cleared[step.Name] {
			t.Errorf("table %q is seeded but never cleared", step.Name)
		}
	}
	for _, companion := range []string{"custom_request_timelines", "purchase_timelines"} {
		if !cleared[companion] {
			t.Errorf("companion table %q is never cleared", companion)
		}
	}
}

func TestClearOrderDeletesChildrenFirst(t *testing.T) {
	position := make(map[string]int, len(clearOrder))
	for i, table := range clearOrder {
		position[table] = i
	}

	// A child table must be truncated before every table it references.
	parents := map[string][]string{
		"notifications":                       {"users"},
		"transactions":                        {"users", "admins", "service_purchases", "custom_requests", "disputes"},
		"disputes":                            {"academic_users", "service_purchases", "custom_requests"},
		"ratings":                             {"academic_users", "services", "custom_requests"},
		"message_attachments":                 {"messages"},
		"messages":                            {"chats", "users"},
		"chats":                               {"service_purchases", "custom_request_offers", "negotiations"},
		"service_purchase_deliverables":       {"service_purchases"},
		"request_implementation_deliverables": {"custom_requests", "academic_users"},
		"purchase_timelines":                  {"service_purchases"},
		"custom_request_timelines":            {"custom_requests"},
		"offer_attachments":                   {"custom_request_offers"},
		"custom_request_attachments":          {"custom_requests"},
		"work_attachments":                    {"works"},
		"service_attachments":                 {"services"},
		"service_purchases":                   {"services", "academic_users"},
		"negotiations":                        {"academic_users", "services"},
		"custom_request_offers":               {"custom_requests", "academic_users"},
		"custom_requests":                     {"academic_users", "academic_categories"},
		"works":                               {"users"},
		"services":                            {"academic_users", "academic_categories"},
		"user_balances":                       {"academic_users"},
		"admins":                              {"users", "roles"},
		"academic_users":                      {"users"},
		"academic_subcategories":              {"academic_categories"},
		"role_permissions":                    {"roles", "permissions"},
	}

	for child, parentTables := range parents {
		childPos, ok := position[child]
		if !ok {
			t.Fatalf("table %q missing from clear order", child)
		}
		for _, parent := range parentTables {
			parentPos, ok := position[parent]
			if !ok {
				t.Fatalf("table %q missing from clear order", parent)
			}
			if childPos >= parentPos {
				t.Errorf("%q must be cleared before %q", child, parent)
			}
		}
	}
}
