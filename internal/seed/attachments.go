package seed

import (
	"context"
	"fmt"

	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Attachment seeders write metadata rows only. Every row points at the shared
// placeholder file; 1-4 attachments per parent.

func (s *Seeder) seedAttachmentsFor(ctx context.Context, table, parentColumn string, parentIDs []uuid.UUID) {
	for _, parentID := range parentIDs {
		count := intBetween(s.rng, 1, 4)
		for j := 0; j < count; j++ {
			kind := pickOne(s.rng, FileKinds)
			builder := s.SQL.Insert(table).
				Columns("id", parentColumn, "file_name", "file_type", "file_url").
				Values(
					uuid.New(),
					parentID,
					fmt.Sprintf("attachment_%d.%s", j+1, kind.Extension),
					kind.Type,
					PlaceholderFileURL,
				)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("table", table).Str("parent", parentID.String()).Msg("failed to create attachment")
			}
		}
	}
}

func (s *Seeder) SeedServiceAttachments(ctx context.Context) error {
	services, err := repository.SelectSome[repository.Service](ctx, s.DB, s.SQL, "services", 10)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	if len(services) == 0 {
		s.Log.Error().Msg("no services found, skipping service attachments")
		return nil
	}

	s.seedAttachmentsFor(ctx, "service_attachments", "service_id", lo.Map(services, func(v repository.Service, _ int) uuid.UUID {
		return v.ID
	}))
	return nil
}

func (s *Seeder) SeedWorkAttachments(ctx context.Context) error {
	works, err := repository.SelectSome[repository.Work](ctx, s.DB, s.SQL, "works", 10)
	if err != nil {
		return fmt.Errorf("list works: %w", err)
	}
	if len(works) == 0 {
		s.Log.Error().Msg("no works found, skipping work attachments")
		return nil
	}

	s.seedAttachmentsFor(ctx, "work_attachments", "work_id", lo.Map(works, func(v repository.Work, _ int) uuid.UUID {
		return v.ID
	}))
	return nil
}

func (s *Seeder) SeedCustomRequestAttachments(ctx context.Context) error {
	requests, err := repository.SelectSome[repository.CustomRequest](ctx, s.DB, s.SQL, "custom_requests", 10)
	if err != nil {
		return fmt.Errorf("list custom requests: %w", err)
	}
	if len(requests) == 0 {
		s.Log.Error().Msg("no custom requests found, skipping request attachments")
		return nil
	}

	s.seedAttachmentsFor(ctx, "custom_request_attachments", "request_id", lo.Map(requests, func(v repository.CustomRequest, _ int) uuid.UUID {
		return v.ID
	}))
	return nil
}

func (s *Seeder) SeedOfferAttachments(ctx context.Context) error {
	offers, err := repository.SelectSome[repository.CustomRequestOffer](ctx, s.DB, s.SQL, "custom_request_offers", 10)
	if err != nil {
		return fmt.Errorf("list offers: %w", err)
	}
	if len(offers) == 0 {
		s.Log.Error().Msg("no offers found, skipping offer attachments")
		return nil
	}

	s.seedAttachmentsFor(ctx, "offer_attachments", "offer_id", lo.Map(offers, func(v repository.CustomRequestOffer, _ int) uuid.UUID {
		return v.ID
	}))
	return nil
}
