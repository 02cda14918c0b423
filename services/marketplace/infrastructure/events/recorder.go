// Package events adapts the ledger's Recorder interface onto the project
// EventBus, publishing marketplace events to their Watermill topics.
package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/psecuresystem/NFT-Marketplace/pkg/logger"
	domainevents "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/events"
)

// Publisher is the slice of the EventBus the recorder needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// BusRecorder publishes ledger events to the EventBus. Recording cannot veto
// a ledger operation, so publish failures are logged and dropped; the bus's
// own retry policy covers transient faults on the subscriber side.
type BusRecorder struct {
	bus Publisher
	log logger.Logger
}

// NewBusRecorder returns a BusRecorder publishing via bus.
func NewBusRecorder(bus Publisher, log logger.Logger) *BusRecorder {
	return &BusRecorder{bus: bus, log: log}
}

// RecordOffered publishes an ItemOfferedEvent to its topic.
func (r *BusRecorder) RecordOffered(ctx context.Context, evt domainevents.ItemOfferedEvent) {
	r.publish(ctx, domainevents.TopicItemOffered, evt.EventID.String(), evt.Version, evt)
}

// RecordBought publishes an ItemBoughtEvent to its topic.
func (r *BusRecorder) RecordBought(ctx context.Context, evt domainevents.ItemBoughtEvent) {
	r.publish(ctx, domainevents.TopicItemBought, evt.EventID.String(), evt.Version, evt)
}

func (r *BusRecorder) publish(ctx context.Context, topic, eventID string, version int, evt any) {
	payload, err := json.Marshal(evt)
	if err != nil {
		r.log.ErrorContext(ctx, "marshal marketplace event", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID)
	msg.Metadata.Set("event_version", strconv.Itoa(version))
	if err := r.bus.Publish(ctx, topic, msg); err != nil {
		r.log.ErrorContext(ctx, "publish marketplace event",
			"topic", topic, "event_id", eventID, "error", err)
	}
}
