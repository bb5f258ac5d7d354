package seed

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/campusgig/campusgig-backend/internal/constants"
	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/google/uuid"
)

// Chat constructors. Each sets exactly one of the three parent links; the
// mutual exclusivity lives here, not in a runtime check.

func chatForPurchase(purchaseID, firstUserID, secondUserID uuid.UUID) repository.Chat {
	return repository.Chat{
		ID:                uuid.New(),
		ServicePurchaseID: repository.ToNullUUID(purchaseID),
		FirstUserID:       firstUserID,
		SecondUserID:      secondUserID,
	}
}

func chatForOffer(offerID, firstUserID, secondUserID uuid.UUID) repository.Chat {
	return repository.Chat{
		ID:           uuid.New(),
		OfferID:      repository.ToNullUUID(offerID),
		FirstUserID:  firstUserID,
		SecondUserID: secondUserID,
	}
}

func chatForNegotiation(negotiationID, firstUserID, secondUserID uuid.UUID) repository.Chat {
	return repository.Chat{
		ID:            uuid.New(),
		NegotiationID: repository.ToNullUUID(negotiationID),
		FirstUserID:   firstUserID,
		SecondUserID:  secondUserID,
	}
}

// transactionLinkFor resolves which single optional foreign key a ledger
// entry carries for a given reason. Reasons without a linked entity leave all
// three null.
func transactionLinkFor(reason string, purchaseID, requestID, disputeID uuid.UUID) (purchase, request, dispute uuid.NullUUID) {
	switch reason {
	case "service_payment":
		purchase = repository.ToNullUUID(purchaseID)
	case "request_payment":
		request = repository.ToNullUUID(requestID)
	case "dispute_refund":
		dispute = repository.ToNullUUID(disputeID)
	}
	return purchase, request, dispute
}

// academicUserMap loads academic_user id -> owning user id.
func (s *Seeder) academicUserMap(ctx context.Context) (map[uuid.UUID]uuid.UUID, error) {
	academicUsers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 0)
	if err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID]uuid.UUID, len(academicUsers))
	for _, a := range academicUsers {
		result[a.ID] = a.UserID
	}
	return result, nil
}

func (s *Seeder) insertChat(ctx context.Context, chat repository.Chat) error {
	builder := s.SQL.Insert("chats").
		Columns("id", "service_purchase_id", "offer_id", "negotiation_id", "first_user_id", "second_user_id").
		Values(chat.ID, chat.ServicePurchaseID, chat.OfferID, chat.NegotiationID, chat.FirstUserID, chat.SecondUserID)
	return s.execInsert(ctx, builder)
}

// SeedChats runs three independent passes, one per chat parent type. Each
// pass pre-checks for an existing chat keyed on its one parent link before
// resolving the two participants and creating the row.
func (s *Seeder) SeedChats(ctx context.Context) error {
	userOf, err := s.academicUserMap(ctx)
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load academic users, skipping chats")
		return nil
	}

	services, err := repository.SelectSome[repository.Service](ctx, s.DB, s.SQL, "services", 0)
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load services, skipping chats")
		return nil
	}
	providerOfService := make(map[uuid.UUID]uuid.UUID, len(services))
	for _, service := range services {
		providerOfService[service.ID] = service.ProviderID
	}

	requests, err := repository.SelectSome[repository.CustomRequest](ctx, s.DB, s.SQL, "custom_requests", 0)
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load custom requests, skipping chats")
		return nil
	}
	requesterOfRequest := make(map[uuid.UUID]uuid.UUID, len(requests))
	for _, request := range requests {
		requesterOfRequest[request.ID] = request.RequesterID
	}

	// Pass 1: purchases.
	purchases, err := repository.SelectSome[repository.ServicePurchase](ctx, s.DB, s.SQL, "service_purchases", 0)
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load purchases, skipping purchase chats")
	}
	for _, purchase := range purchases {
		exists, err := repository.Exists(ctx, s.DB, s.SQL, "chats", sq.Eq{"service_purchase_id": purchase.ID})
		if err != nil || exists {
			continue
		}
		buyerUser, okBuyer := userOf[purchase.BuyerID]
		providerUser, okProvider := userOf[providerOfService[purchase.ServiceID]]
		if !okBuyer || !okProvider {
			s.Log.Warn().Str("purchase", purchase.ID.String()).Msg("cannot resolve chat participants, skipping")
			continue
		}
		if err := s.insertChat(ctx, chatForPurchase(purchase.ID, buyerUser, providerUser)); err != nil {
			s.Log.Error().Err(err).Str("purchase", purchase.ID.String()).Msg("failed to create purchase chat")
		}
	}

	// Pass 2: offers.
	offers, err := repository.SelectSome[repository.CustomRequestOffer](ctx, s.DB, s.SQL, "custom_request_offers", 0)
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load offers, skipping offer chats")
	}
	for _, offer := range offers {
		exists, err := repository.Exists(ctx, s.DB, s.SQL, "chats", sq.Eq{"offer_id": offer.ID})
		if err != nil || exists {
			continue
		}
		requesterUser, okRequester := userOf[requesterOfRequest[offer.RequestID]]
		providerUser, okProvider := userOf[offer.ProviderID]
		if !okRequester || !okProvider {
			s.Log.Warn().Str("offer", offer.ID.String()).Msg("cannot resolve chat participants, skipping")
			continue
		}
		if err := s.insertChat(ctx, chatForOffer(offer.ID, requesterUser, providerUser)); err != nil {
			s.Log.Error().Err(err).Str("offer", offer.ID.String()).Msg("failed to create offer chat")
		}
	}

	// Pass 3: negotiations.
	negotiations, err := repository.SelectSome[repository.Negotiation](ctx, s.DB, s.SQL, "negotiations", 0)
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load negotiations, skipping negotiation chats")
	}
	for _, negotiation := range negotiations {
		exists, err := repository.Exists(ctx, s.DB, s.SQL, "chats", sq.Eq{"negotiation_id": negotiation.ID})
		if err != nil || exists {
			continue
		}
		buyerUser, okBuyer := userOf[negotiation.BuyerID]
		providerUser, okProvider := userOf[negotiation.ProviderID]
		if !okBuyer || !okProvider {
			s.Log.Warn().Str("negotiation", negotiation.ID.String()).Msg("cannot resolve chat participants, skipping")
			continue
		}
		if err := s.insertChat(ctx, chatForNegotiation(negotiation.ID, buyerUser, providerUser)); err != nil {
			s.Log.Error().Err(err).Str("negotiation", negotiation.ID.String()).Msg("failed to create negotiation chat")
		}
	}
	return nil
}

// SeedMessages writes 6-14 messages per chat, one minute apart counting
// backward from now. Senders come from the full user pool, not just the two
// chat participants; known simplification.
func (s *Seeder) SeedMessages(ctx context.Context) error {
	chats, err := repository.SelectSome[repository.Chat](ctx, s.DB, s.SQL, "chats", 0)
	if err != nil {
		return fmt.Errorf("list chats: %w", err)
	}
	if len(chats) == 0 {
		s.Log.Error().Msg("no chats found, skipping messages")
		return nil
	}

	users, err := s.UserRepo.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		s.Log.Error().Msg("no users found, skipping messages")
		return nil
	}

	now := s.now()
	for _, chat := range chats {
		count := intBetween(s.rng, 6, 14)
		for k := 0; k < count; k++ {
			sender := pickOne(s.rng, users)
			sentAt := now.Add(-time.Duration(count-k) * time.Minute)

			builder := s.SQL.Insert("messages").
				Columns("id", "chat_id", "sender_id", "body", "sent_at").
				Values(uuid.New(), chat.ID, sender.ID, pickOne(s.rng, MessageBodies), sentAt)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("chat", chat.ID.String()).Msg("failed to create message")
			}
		}
	}
	return nil
}

// SeedMessageAttachments gives roughly 30% of messages 1-2 attachment rows.
func (s *Seeder) SeedMessageAttachments(ctx context.Context) error {
	messages, err := repository.SelectSome[repository.Message](ctx, s.DB, s.SQL, "messages", 0)
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}
	if len(messages) == 0 {
		s.Log.Error().Msg("no messages found, skipping message attachments")
		return nil
	}

	for _, message := range messages {
		if !chance(s.rng, 0.3) {
			continue
		}
		count := intBetween(s.rng, 1, 2)
		for j := 0; j < count; j++ {
			kind := pickOne(s.rng, FileKinds)
			builder := s.SQL.Insert("message_attachments").
				Columns("id", "message_id", "file_name", "file_type", "file_url").
				Values(uuid.New(), message.ID, fmt.Sprintf("shared_%d.%s", j+1, kind.Extension), kind.Type, PlaceholderFileURL)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("message", message.ID.String()).Msg("failed to create message attachment")
			}
		}
	}
	return nil
}

// SeedRatings makes 30 attempts; 70% target a service, the rest a custom
// request. Duplicate ratings hit the unique constraint and are skipped
// silently; that is the expected dedup mechanism here.
func (s *Seeder) SeedRatings(ctx context.Context) error {
	raters, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 0)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(raters) == 0 {
		s.Log.Error().Msg("no academic users found, skipping ratings")
		return nil
	}

	services, err := repository.SelectSome[repository.Service](ctx, s.DB, s.SQL, "services", 0)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	requests, err := repository.SelectSome[repository.CustomRequest](ctx, s.DB, s.SQL, "custom_requests", 0)
	if err != nil {
		return fmt.Errorf("list custom requests: %w", err)
	}
	if len(services) == 0 && len(requests) == 0 {
		s.Log.Error().Msg("nothing to rate, skipping ratings")
		return nil
	}

	for attempt := 0; attempt < 30; attempt++ {
		rater := pickOne(s.rng, raters)

		var serviceID, requestID uuid.NullUUID
		if (chance(s.rng, 0.7) && len(services) > 0) || len(requests) == 0 {
			serviceID = repository.ToNullUUID(pickOne(s.rng, services).ID)
		} else {
			requestID = repository.ToNullUUID(pickOne(s.rng, requests).ID)
		}

		builder := s.SQL.Insert("ratings").
			Columns("id", "rater_id", "service_id", "custom_request_id", "stars", "comment").
			Values(uuid.New(), rater.ID, serviceID, requestID, intBetween(s.rng, 1, 5), pickOne(s.rng, RatingComments))

		if err := s.execInsert(ctx, builder); err != nil {
			if repository.IsUniqueViolation(err) {
				continue
			}
			s.Log.Error().Err(err).Msg("failed to create rating")
		}
	}
	return nil
}

// SeedDisputes makes 20 attempts between two distinct academic users, half
// against purchases and half against requests. One dispute per target,
// enforced by a pre-check.
func (s *Seeder) SeedDisputes(ctx context.Context) error {
	parties, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 0)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(parties) < 2 {
		s.Log.Error().Msg("need at least two academic users, skipping disputes")
		return nil
	}

	purchases, err := repository.SelectSome[repository.ServicePurchase](ctx, s.DB, s.SQL, "service_purchases", 0)
	if err != nil {
		return fmt.Errorf("list purchases: %w", err)
	}
	requests, err := repository.SelectSome[repository.CustomRequest](ctx, s.DB, s.SQL, "custom_requests", 0)
	if err != nil {
		return fmt.Errorf("list custom requests: %w", err)
	}
	if len(purchases) == 0 && len(requests) == 0 {
		s.Log.Error().Msg("nothing to dispute, skipping disputes")
		return nil
	}

	for attempt := 0; attempt < 20; attempt++ {
		complainant := pickOne(s.rng, parties)
		respondent := pickOne(s.rng, parties)
		if respondent.ID == complainant.ID {
			continue
		}

		var purchaseID, requestID uuid.NullUUID
		var targetFilter sq.Eq
		if (chance(s.rng, 0.5) && len(purchases) > 0) || len(requests) == 0 {
			purchaseID = repository.ToNullUUID(pickOne(s.rng, purchases).ID)
			targetFilter = sq.Eq{"service_purchase_id": purchaseID.UUID}
		} else {
			requestID = repository.ToNullUUID(pickOne(s.rng, requests).ID)
			targetFilter = sq.Eq{"custom_request_id": requestID.UUID}
		}

		exists, err := repository.Exists(ctx, s.DB, s.SQL, "disputes", targetFilter)
		if err != nil {
			s.Log.Error().Err(err).Msg("failed to check dispute existence")
			continue
		}
		if exists {
			continue
		}

		builder := s.SQL.Insert("disputes").
			Columns("id", "complainant_id", "respondent_id", "service_purchase_id", "custom_request_id", "reason", "status").
			Values(uuid.New(), complainant.ID, respondent.ID, purchaseID, requestID, pickOne(s.rng, DisputeReasons), pickOne(s.rng, DisputeStatuses))

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Msg("failed to create dispute")
		}
	}
	return nil
}

// SeedTransactions writes 20 ledger entries. The reason decides which single
// optional link is populated; admins are attributed on ~30% of entries.
func (s *Seeder) SeedTransactions(ctx context.Context) error {
	users, err := s.UserRepo.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		s.Log.Error().Msg("no users found, skipping transactions")
		return nil
	}

	purchases, err := repository.SelectSome[repository.ServicePurchase](ctx, s.DB, s.SQL, "service_purchases", 0)
	if err != nil {
		return fmt.Errorf("list purchases: %w", err)
	}
	requests, err := repository.SelectSome[repository.CustomRequest](ctx, s.DB, s.SQL, "custom_requests", 0)
	if err != nil {
		return fmt.Errorf("list custom requests: %w", err)
	}
	disputes, err := repository.SelectSome[repository.Dispute](ctx, s.DB, s.SQL, "disputes", 0)
	if err != nil {
		return fmt.Errorf("list disputes: %w", err)
	}
	admins, err := repository.SelectSome[repository.Admin](ctx, s.DB, s.SQL, "admins", 0)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}

	reasons := []string{"withdrawal", "deposit"}
	if len(purchases) > 0 {
		reasons = append(reasons, "service_payment")
	}
	if len(requests) > 0 {
		reasons = append(reasons, "request_payment")
	}
	if len(disputes) > 0 {
		reasons = append(reasons, "dispute_refund")
	}

	for i := 0; i < 20; i++ {
		user := pickOne(s.rng, users)
		reason := pickOne(s.rng, reasons)

		var purchaseID, requestID, disputeID uuid.UUID
		if len(purchases) > 0 {
			purchaseID = pickOne(s.rng, purchases).ID
		}
		if len(requests) > 0 {
			requestID = pickOne(s.rng, requests).ID
		}
		if len(disputes) > 0 {
			disputeID = pickOne(s.rng, disputes).ID
		}
		purchaseLink, requestLink, disputeLink := transactionLinkFor(reason, purchaseID, requestID, disputeID)

		var adminID uuid.NullUUID
		if len(admins) > 0 && chance(s.rng, 0.3) {
			adminID = repository.ToNullUUID(pickOne(s.rng, admins).ID)
		}

		direction := "credit"
		if chance(s.rng, 0.5) {
			direction = "debit"
		}

		builder := s.SQL.Insert("transactions").
			Columns("id", "user_id", "admin_id", "direction", "reason", "amount", "service_purchase_id", "custom_request_id", "dispute_id").
			Values(uuid.New(), user.ID, adminID, direction, reason, int64(intBetween(s.rng, 500, 20000)), purchaseLink, requestLink, disputeLink)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("reason", reason).Msg("failed to create transaction")
		}
	}
	return nil
}

// SeedNotifications gives every user exactly two notifications from the
// template catalog, each with an independent read flag and a random past
// timestamp.
func (s *Seeder) SeedNotifications(ctx context.Context) error {
	users, err := s.UserRepo.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		s.Log.Error().Msg("no users found, skipping notifications")
		return nil
	}

	now := s.now()
	for _, user := range users {
		for j := 0; j < 2; j++ {
			template := pickOne(s.rng, constants.NotificationTemplates)
			createdAt := now.Add(-time.Duration(intBetween(s.rng, 1, 30*24)) * time.Hour)

			builder := s.SQL.Insert("notifications").
				Columns("id", "user_id", "title", "body", "is_read", "created_at").
				Values(uuid.New(), user.ID, template.Title, template.Body, chance(s.rng, 0.5), createdAt)

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("user", user.Username).Msg("failed to create notification")
			}
		}
	}
	return nil
}
