package seed

import (
	"context"
	"strings"
	"time"
)

// clearOrder lists every seeded table children-first, so the single TRUNCATE
// never trips over a live foreign key. Keep it in sync with Steps(); the
// pipeline test cross-checks the two.
var clearOrder = []string{
	"notifications",
	"transactions",
	"disputes",
	"ratings",
	"message_attachments",
	"messages",
	"chats",
	"service_purchase_deliverables",
	"request_implementation_deliverables",
	"purchase_timelines",
	"custom_request_timelines",
	"offer_attachments",
	"custom_request_attachments",
	"work_attachments",
	"service_attachments",
	"service_purchases",
	"negotiations",
	"custom_request_offers",
	"custom_requests",
	"works",
	"services",
	"user_balances",
	"admins",
	"academic_users",
	"users",
	"skills",
	"job_titles",
	"system_balance",
	"academic_subcategories",
	"academic_categories",
	"role_permissions",
	"permissions",
	"roles",
}

// ResetDB wipes every seeded table. Irreversible; NewSeeder already refuses
// to run outside development. Truncating an empty database is a no-op, not an
// error.
func (s *Seeder) ResetDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.Log.Info().Msg("resetting database")
	query := "TRUNCATE TABLE " + strings.Join(clearOrder, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		s.Log.Fatal().Err(err).Msg("failed to reset database")
	}

	s.Log.Info().Msg("database reset completed")
}
