package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/campusgig/campusgig-backend/factory"
	"github.com/campusgig/campusgig-backend/internal/config"
	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/campusgig/campusgig-backend/pkg/logger"
	"github.com/jmoiron/sqlx"
)

type Seeder struct {
	Config   *config.Config
	DB       *sqlx.DB
	SQL      sq.StatementBuilderType
	Log      *logger.Logger
	UserRepo *repository.UserRepository

	rng *rand.Rand
	now func() time.Time
}

// Step is one unit of the fixture pipeline. DependsOn lists the names of
// steps whose rows this step reads for foreign keys; the declared order of
// Steps() must be a valid topological sort of these tags.
type Step struct {
	Name      string
	DependsOn []string
	Run       func(ctx context.Context) error
}

func NewSeeder(cfg *config.Config) (*Seeder, func(), error) {
	if !cfg.IsDev {
		return nil, nil, fmt.Errorf("seeding is only allowed in development environment")
	}

	f, cleanup, err := factory.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize factory: %w", err)
	}

	randomSeed := cfg.Seed.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}

	return &Seeder{
		Config:   cfg,
		DB:       f.DB.DB,
		SQL:      f.DB.SqlBuilder,
		Log:      f.Logger,
		UserRepo: f.Repositories.User,
		rng:      rand.New(rand.NewSource(randomSeed)),
		now:      time.Now,
	}, cleanup, nil
}

// Steps returns the full pipeline in foreign-key dependency order. Do not
// reorder without re-deriving the DependsOn graph.
func (s *Seeder) Steps() []Step {
	return []Step{
		{Name: "roles", Run: s.SeedRoles},
		{Name: "permissions", Run: s.SeedPermissions},
		{Name: "role_permissions", DependsOn: []string{"roles", "permissions"}, Run: s.SeedRolePermissions},
		{Name: "academic_categories", Run: s.SeedAcademicCategories},
		{Name: "academic_subcategories", DependsOn: []string{"academic_categories"}, Run: s.SeedAcademicSubcategories},
		{Name: "system_balance", Run: s.SeedSystemBalance},
		{Name: "users", Run: s.SeedUsers},
		{Name: "academic_users", DependsOn: []string{"users"}, Run: s.SeedAcademicUsers},
		{Name: "admins", DependsOn: []string{"users", "roles"}, Run: s.SeedAdmins},
		{Name: "user_balances", DependsOn: []string{"academic_users"}, Run: s.SeedUserBalances},
		{Name: "job_titles", DependsOn: []string{"academic_users"}, Run: s.SeedJobTitles},
		{Name: "skills", DependsOn: []string{"academic_users"}, Run: s.SeedSkills},
		{Name: "services", DependsOn: []string{"academic_users", "academic_categories", "academic_subcategories"}, Run: s.SeedServices},
		{Name: "service_attachments", DependsOn: []string{"services"}, Run: s.SeedServiceAttachments},
		{Name: "works", DependsOn: []string{"users"}, Run: s.SeedWorks},
		{Name: "work_attachments", DependsOn: []string{"works"}, Run: s.SeedWorkAttachments},
		{Name: "custom_requests", DependsOn: []string{"academic_users", "academic_categories", "academic_subcategories"}, Run: s.SeedCustomRequests},
		{Name: "custom_request_attachments", DependsOn: []string{"custom_requests"}, Run: s.SeedCustomRequestAttachments},
		{Name: "custom_request_offers", DependsOn: []string{"custom_requests", "academic_users"}, Run: s.SeedCustomRequestOffers},
		{Name: "offer_attachments", DependsOn: []string{"custom_request_offers"}, Run: s.SeedOfferAttachments},
		{Name: "negotiations", DependsOn: []string{"academic_users", "services"}, Run: s.SeedNegotiations},
		{Name: "service_purchases", DependsOn: []string{"services", "academic_users"}, Run: s.SeedServicePurchases},
		{Name: "request_implementation_deliverables", DependsOn: []string{"custom_request_offers"}, Run: s.SeedRequestImplementationDeliverables},
		{Name: "service_purchase_deliverables", DependsOn: []string{"service_purchases"}, Run: s.SeedServicePurchaseDeliverables},
		{Name: "chats", DependsOn: []string{"service_purchases", "custom_request_offers", "negotiations"}, Run: s.SeedChats},
		{Name: "messages", DependsOn: []string{"chats", "users"}, Run: s.SeedMessages},
		{Name: "message_attachments", DependsOn: []string{"messages"}, Run: s.SeedMessageAttachments},
		{Name: "ratings", DependsOn: []string{"academic_users", "services", "custom_requests"}, Run: s.SeedRatings},
		{Name: "disputes", DependsOn: []string{"academic_users", "service_purchases", "custom_requests"}, Run: s.SeedDisputes},
		{Name: "transactions", DependsOn: []string{"users", "admins", "service_purchases", "custom_requests", "disputes"}, Run: s.SeedTransactions},
		{Name: "notifications", DependsOn: []string{"users"}, Run: s.SeedNotifications},
	}
}

// Run executes every step in declaration order. Per-item failures are
// handled inside the steps; an error returned here means something escaped a
// step entirely and the run should stop.
func (s *Seeder) Run(ctx context.Context) error {
	started := s.now()
	for _, step := range s.Steps() {
		s.Log.Info().Str("step", step.Name).Msg("seeding")
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("seed step %s: %w", step.Name, err)
		}
	}
	s.Log.Info().Dur("took", time.Since(started)).Msg("seeding completed")
	return nil
}
