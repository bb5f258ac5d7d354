package seed

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/google/uuid"
)

type timelineEvent struct {
	Action string
	Role   string
}

// purchaseTimelineEvents maps a purchase status to the single audit event the
// seeder derives for it. The role names which side of the purchase acted.
var purchaseTimelineEvents = map[string]timelineEvent{
	"pending":              {Action: "Purchased", Role: "buyer"},
	"in_progress":          {Action: "Started", Role: "provider"},
	"submitted":            {Action: "Submitted", Role: "provider"},
	"completed":            {Action: "Completed", Role: "buyer"},
	"disputed_by_buyer":    {Action: "Disputed", Role: "buyer"},
	"disputed_by_provider": {Action: "Disputed", Role: "provider"},
	"buyer_rejected":       {Action: "Rejected", Role: "buyer"},
	"provider_rejected":    {Action: "Rejected", Role: "provider"},
}

func purchaseTimelineFor(status string) (timelineEvent, bool) {
	event, ok := purchaseTimelineEvents[status]
	return event, ok
}

func (s *Seeder) SeedServices(ctx context.Context) error {
	providers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 10)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(providers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping services")
		return nil
	}

	subcategories, err := repository.SelectSome[repository.AcademicSubcategory](ctx, s.DB, s.SQL, "academic_subcategories", 20)
	if err != nil {
		return fmt.Errorf("list subcategories: %w", err)
	}
	if len(subcategories) == 0 {
		s.Log.Error().Msg("no subcategories found, skipping services")
		return nil
	}

	var created int
	for i, provider := range providers {
		count := intBetween(s.rng, 1, 2)
		for j := 0; j < count; j++ {
			subcategory := subcategories[(i+j)%len(subcategories)]
			builder := s.SQL.Insert("services").
				Columns("id", "provider_id", "category_id", "subcategory_id", "title", "description", "price", "status").
				Values(
					uuid.New(),
					provider.ID,
					subcategory.CategoryID,
					repository.ToNullUUID(subcategory.ID),
					pickOne(s.rng, ServiceTitles),
					"Hands-on help tailored to your coursework and deadlines.",
					int64(intBetween(s.rng, 1500, 15000)),
					pickOne(s.rng, ServiceStatuses),
				)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("provider", provider.ID.String()).Msg("failed to create service")
				continue
			}
			created++
		}
	}
	s.Log.Info().Int("count", created).Msg("services created")
	return nil
}

func (s *Seeder) SeedWorks(ctx context.Context) error {
	users, err := s.UserRepo.List(ctx, 10)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		s.Log.Error().Msg("no users found, skipping works")
		return nil
	}

	for _, user := range users {
		count := intBetween(s.rng, 1, 2)
		for j := 0; j < count; j++ {
			builder := s.SQL.Insert("works").
				Columns("id", "user_id", "title", "description").
				Values(
					uuid.New(),
					user.ID,
					pickOne(s.rng, WorkTitles),
					"Portfolio item demonstrating past academic work.",
				)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("user", user.Username).Msg("failed to create work")
			}
		}
	}
	return nil
}

// SeedCustomRequests creates one open request per sampled academic user and
// records a request_created audit row for each.
func (s *Seeder) SeedCustomRequests(ctx context.Context) error {
	requesters, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 10)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(requesters) == 0 {
		s.Log.Error().Msg("no academic users found, skipping custom requests")
		return nil
	}

	subcategories, err := repository.SelectSome[repository.AcademicSubcategory](ctx, s.DB, s.SQL, "academic_subcategories", 20)
	if err != nil {
		return fmt.Errorf("list subcategories: %w", err)
	}
	if len(subcategories) == 0 {
		s.Log.Error().Msg("no subcategories found, skipping custom requests")
		return nil
	}

	for i, requester := range requesters {
		subcategory := subcategories[i%len(subcategories)]
		requestID := uuid.New()
		builder := s.SQL.Insert("custom_requests").
			Columns("id", "requester_id", "category_id", "subcategory_id", "title", "description", "budget", "deadline", "status").
			Values(
				requestID,
				requester.ID,
				subcategory.CategoryID,
				repository.ToNullUUID(subcategory.ID),
				pickOne(s.rng, RequestTitles),
				"Please see the attached brief for full requirements.",
				int64(intBetween(s.rng, 2000, 20000)),
				s.now().AddDate(0, 0, intBetween(s.rng, 7, 30)),
				pickOne(s.rng, RequestStatuses),
			)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("requester", requester.ID.String()).Msg("failed to create custom request")
			continue
		}

		timeline := s.SQL.Insert("custom_request_timelines").
			Columns("id", "request_id", "actor_id", "action", "role").
			Values(uuid.New(), requestID, requester.ID, "request_created", "requester")
		if err := s.execInsert(ctx, timeline); err != nil {
			s.Log.Error().Err(err).Str("request", requestID.String()).Msg("failed to create request timeline entry")
		}
	}
	return nil
}

// SeedCustomRequestOffers places bids against open requests. One offer per
// (request, provider) pair, enforced by a pre-check rather than a constraint.
func (s *Seeder) SeedCustomRequestOffers(ctx context.Context) error {
	requests, err := repository.SelectSome[repository.CustomRequest](ctx, s.DB, s.SQL, "custom_requests", 10)
	if err != nil {
		return fmt.Errorf("list custom requests: %w", err)
	}
	if len(requests) == 0 {
		s.Log.Error().Msg("no custom requests found, skipping offers")
		return nil
	}

	providers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 10)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(providers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping offers")
		return nil
	}

	for i, request := range requests {
		count := intBetween(s.rng, 1, 3)
		for j := 0; j < count; j++ {
			provider := providers[(i+j)%len(providers)]
			if provider.ID == request.RequesterID {
				continue
			}

			exists, err := repository.Exists(ctx, s.DB, s.SQL, "custom_request_offers", sq.Eq{
				"request_id":  request.ID,
				"provider_id": provider.ID,
			})
			if err != nil {
				s.Log.Error().Err(err).Str("request", request.ID.String()).Msg("failed to check offer existence")
				continue
			}
			if exists {
				continue
			}

			builder := s.SQL.Insert("custom_request_offers").
				Columns("id", "request_id", "provider_id", "amount", "message", "status").
				Values(
					uuid.New(),
					request.ID,
					provider.ID,
					int64(intBetween(s.rng, 1500, 18000)),
					"I have done similar work before and can start right away.",
					pickOne(s.rng, OfferStatuses),
				)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("request", request.ID.String()).Msg("failed to create offer")
			}
		}
	}
	return nil
}

func (s *Seeder) SeedNegotiations(ctx context.Context) error {
	services, err := repository.SelectSome[repository.Service](ctx, s.DB, s.SQL, "services", 10)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	if len(services) == 0 {
		s.Log.Error().Msg("no services found, skipping negotiations")
		return nil
	}

	buyers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 10)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(buyers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping negotiations")
		return nil
	}

	for i, service := range services {
		buyer := buyers[i%len(buyers)]
		if buyer.ID == service.ProviderID {
			buyer = buyers[(i+1)%len(buyers)]
		}
		if buyer.ID == service.ProviderID {
			continue
		}

		builder := s.SQL.Insert("negotiations").
			Columns("id", "buyer_id", "provider_id", "service_id", "status").
			Values(uuid.New(), buyer.ID, service.ProviderID, service.ID, pickOne(s.rng, NegotiationStatuses))

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("service", service.ID.String()).Msg("failed to create negotiation")
		}
	}
	return nil
}

// SeedServicePurchases creates one purchase per sampled service with a status
// drawn from the workflow enum, plus the single timeline row that status
// implies. An unresolvable actor skips the timeline row but keeps the
// purchase.
func (s *Seeder) SeedServicePurchases(ctx context.Context) error {
	services, err := repository.SelectSome[repository.Service](ctx, s.DB, s.SQL, "services", 10)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	if len(services) == 0 {
		s.Log.Error().Msg("no services found, skipping purchases")
		return nil
	}

	buyers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 10)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(buyers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping purchases")
		return nil
	}

	for i, service := range services {
		buyer := buyers[i%len(buyers)]
		status := pickOne(s.rng, PurchaseStatuses)
		purchaseID := uuid.New()

		builder := s.SQL.Insert("service_purchases").
			Columns("id", "service_id", "buyer_id", "price", "status").
			Values(purchaseID, service.ID, buyer.ID, service.Price, status)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("service", service.ID.String()).Msg("failed to create purchase")
			continue
		}

		event, ok := purchaseTimelineFor(status)
		if !ok {
			s.Log.Warn().Str("status", status).Str("purchase", purchaseID.String()).Msg("no timeline event for status, skipping")
			continue
		}

		actorID := buyer.ID
		if event.Role == "provider" {
			actorID = service.ProviderID
		}
		if actorID == uuid.Nil {
			s.Log.Warn().Str("purchase", purchaseID.String()).Str("role", event.Role).Msg("cannot resolve timeline actor, skipping")
			continue
		}

		timeline := s.SQL.Insert("purchase_timelines").
			Columns("id", "purchase_id", "actor_id", "action", "role").
			Values(uuid.New(), purchaseID, actorID, event.Action, event.Role)
		if err := s.execInsert(ctx, timeline); err != nil {
			s.Log.Error().Err(err).Str("purchase", purchaseID.String()).Msg("failed to create purchase timeline entry")
		}
	}
	return nil
}

func (s *Seeder) SeedRequestImplementationDeliverables(ctx context.Context) error {
	offers, err := repository.SelectSome[repository.CustomRequestOffer](ctx, s.DB, s.SQL, "custom_request_offers", 10)
	if err != nil {
		return fmt.Errorf("list offers: %w", err)
	}
	if len(offers) == 0 {
		s.Log.Error().Msg("no offers found, skipping request deliverables")
		return nil
	}

	for _, offer := range offers {
		var accepted *bool
		var decidedAt *time.Time
		if chance(s.rng, 0.5) {
			decision := chance(s.rng, 0.7)
			at := s.now().AddDate(0, 0, -intBetween(s.rng, 1, 10))
			accepted = &decision
			decidedAt = &at
		}

		builder := s.SQL.Insert("request_implementation_deliverables").
			Columns("id", "request_id", "provider_id", "note", "file_url", "accepted", "decided_at").
			Values(
				uuid.New(),
				offer.RequestID,
				offer.ProviderID,
				"Final implementation attached, covering every point in the brief.",
				PlaceholderFileURL,
				repository.ToNullBool(accepted),
				repository.ToNullTime(decidedAt),
			)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("offer", offer.ID.String()).Msg("failed to create request deliverable")
		}
	}
	return nil
}

func (s *Seeder) SeedServicePurchaseDeliverables(ctx context.Context) error {
	purchases, err := repository.SelectSome[repository.ServicePurchase](ctx, s.DB, s.SQL, "service_purchases", 10)
	if err != nil {
		return fmt.Errorf("list purchases: %w", err)
	}
	if len(purchases) == 0 {
		s.Log.Error().Msg("no purchases found, skipping purchase deliverables")
		return nil
	}

	for _, purchase := range purchases {
		var accepted *bool
		var decidedAt *time.Time
		if chance(s.rng, 0.5) {
			decision := chance(s.rng, 0.7)
			at := s.now().AddDate(0, 0, -intBetween(s.rng, 1, 10))
			accepted = &decision
			decidedAt = &at
		}

		builder := s.SQL.Insert("service_purchase_deliverables").
			Columns("id", "purchase_id", "note", "file_url", "accepted", "decided_at").
			Values(
				uuid.New(),
				purchase.ID,
				"Deliverable uploaded for review.",
				PlaceholderFileURL,
				repository.ToNullBool(accepted),
				repository.ToNullTime(decidedAt),
			)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("purchase", purchase.ID.String()).Msg("failed to create purchase deliverable")
		}
	}
	return nil
}
