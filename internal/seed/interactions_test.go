package seed

import (
	"testing"

	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/google/uuid"
)

func countChatLinks(chat repository.Chat) int {
	var n int
	if chat.ServicePurchaseID.Valid {
		n++
	}
	if chat.OfferID.Valid {
		n++
	}
	if chat.NegotiationID.Valid {
		n++
	}
	return n
}

func TestChatConstructorsSetExactlyOneParentLink(t *testing.T) {
	parent := uuid.New()
	first := uuid.New()
	second := uuid.New()

	cases := []struct {
		name string
		chat repository.Chat
		link uuid.NullUUID
	}{
		{"purchase", chatForPurchase(parent, first, second), chatForPurchase(parent, first, second).ServicePurchaseID},
		{"offer", chatForOffer(parent, first, second), chatForOffer(parent, first, second).OfferID},
		{"negotiation", chatForNegotiation(parent, first, second), chatForNegotiation(parent, first, second).NegotiationID},
	}

	for _, tc := range cases {
		if got := countChatLinks(tc.chat); got != 1 {
			t.Errorf("%s chat has %d parent links, want exactly 1", tc.name, got)
		}
		if !tc.link.Valid || tc.link.UUID != parent {
			t.Errorf("%s chat does not link its parent", tc.name)
		}
		if tc.chat.FirstUserID != first || tc.chat.SecondUserID != second {
			t.Errorf("%s chat participants not carried through", tc.name)
		}
	}
}

func TestTransactionLinkForMatchesReason(t *testing.T) {
	purchaseID := uuid.New()
	requestID := uuid.New()
	disputeID := uuid.New()

	cases := []struct {
		reason    string
		wantLinks int
	}{
		{"service_payment", 1},
		{"request_payment", 1},
		{"dispute_refund", 1},
		{"withdrawal", 0},
		{"deposit", 0},
	}

	for _, tc := range cases {
		purchase, request, dispute := transactionLinkFor(tc.reason, purchaseID, requestID, disputeID)

		var n int
		if purchase.Valid {
			n++
		}
		if request.Valid {
			n++
		}
		if dispute.Valid {
			n++
		}
		if n != tc.wantLinks {
			t.Errorf("reason %q populated %d links, want %d", tc.reason, n, tc.wantLinks)
		}

		switch tc.reason {
		case "service_payment":
			if purchase.UUID != purchaseID {
				t.Errorf("service_payment should link the purchase")
			}
		case "request_payment":
			if request.UUID != requestID {
				t.Errorf("request_payment should link the request")
			}
		case "dispute_refund":
			if dispute.UUID != disputeID {
				t.Errorf("dispute_refund should link the dispute")
			}
		}
	}
}
