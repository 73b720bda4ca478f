package handler

import (
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/realtime"
)

// StreamHandler relays ledger change notifications over server-sent
// events so clients can refresh without polling.
type StreamHandler struct {
	hub *realtime.Hub
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

var allTopics = []string{service.TopicBills, service.TopicWorkers, service.TopicAlterations, service.TopicSamples}

// Stream subscribes the client to change events. ?topics=bills,workers
// narrows the subscription; the default is every topic.
func (h *StreamHandler) Stream(c *gin.Context) {
	topics := allTopics
	if raw := c.Query("topics"); raw != "" {
		topics = strings.Split(raw, ",")
	}

	ctx := c.Request.Context()
	merged := make(chan realtime.Event, 16)
	subs := make([]*realtime.Subscription, 0, len(topics))
	for _, topic := range topics {
		subs = append(subs, h.hub.Subscribe(topic))
	}
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	for _, sub := range subs {
		go func(sub *realtime.Subscription) {
			for {
				select {
				case <-ctx.Done():
					return
				case ev := <-sub.C:
					select {
					case merged <- ev:
					case <-ctx.Done():
						return
					}
				}
			}
		}(sub)
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Heartbeat keeps intermediaries from closing quiet connections.
	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev := <-merged:
			c.SSEvent("change", ev)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}
