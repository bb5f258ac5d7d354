package seed

import "testing"

func TestPurchaseTimelineForCompleted(t *testing.T) {
	event, ok := purchaseTimelineFor("completed")
	if !ok {
		t.Fatal("expected a timeline event for completed")
	}
	if event.Action != "Completed" || event.Role != "buyer" {
		t.Errorf("completed = %+v, want {Completed buyer}", event)
	}
}

func TestEveryPurchaseStatusHasTimelineEvent(t *testing.T) {
	for _, status := range PurchaseStatuses {
		event, ok := purchaseTimelineFor(status)
		if !ok {
			t.Errorf("status %q has no timeline event", status)
			continue
		}
		if event.Role != "buyer" && event.Role != "provider" {
			t.Errorf("status %q resolves to unknown role %q", status, event.Role)
		}
	}
}

func TestPurchaseTimelineForUnknownStatus(t *testing.T) {
	if _, ok := purchaseTimelineFor("refunded"); ok {
		t.Error("expected no timeline event for an unknown status")
	}
}
