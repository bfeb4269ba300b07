package services

import (
	"encoding/json"
	"log"

	"github.com/HuynhPham0302/Ecommerce/pkg/rabbitmq"
)

// publishEvent marshals the payload and publishes it to the given queue.
// A nil publisher or a broker failure is logged and never fails the
// business operation that produced the event.
func publishEvent(mq rabbitmq.Publisher, queue, event string, payload map[string]interface{}) {
	if mq == nil {
		return
	}
	payload["event"] = event
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := mq.Publish(queue, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
