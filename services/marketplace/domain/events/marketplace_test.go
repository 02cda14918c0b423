package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/events"
)

func TestTopics_Distinct(t *testing.T) {
	if events.TopicItemOffered == events.TopicItemBought {
		t.Fatal("offered and bought topics must differ")
	}
}

func TestItemBoughtEvent_JSONRoundTrip(t *testing.T) {
	original := events.ItemBoughtEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		ItemID:     4,
		Collection: uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		TokenID:    17,
		Price:      200,
		Seller:     uuid.MustParse("770e8400-e29b-41d4-a716-446655440000"),
		Buyer:      uuid.MustParse("880e8400-e29b-41d4-a716-446655440000"),
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.ItemBoughtEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if decoded != original {
		t.Fatalf("round trip changed event:\n got %+v\nwant %+v", decoded, original)
	}
}
