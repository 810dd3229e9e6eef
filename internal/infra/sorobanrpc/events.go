package sorobanrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/streampay/internal/stellar/scval"
	"github.com/gabapcia/streampay/internal/stream"
)

// eventsPageSize is the number of events requested per getEvents call.
const eventsPageSize = 100

type (
	// EventResponse is a single contract event returned by getEvents.
	EventResponse struct {
		Type       string   `json:"type"`
		Ledger     uint32   `json:"ledger"`
		ContractID string   `json:"contractId"`
		ID         string   `json:"id"`
		Topic      []string `json:"topic"`
		Value      string   `json:"value"`
	}

	// GetEventsResponse is the result of getEvents.
	GetEventsResponse struct {
		Events       []EventResponse `json:"events"`
		Cursor       string          `json:"cursor"`
		LatestLedger uint32          `json:"latestLedger"`
	}

	// GetLatestLedgerResponse is the result of getLatestLedger.
	GetLatestLedgerResponse struct {
		ID              string `json:"id"`
		ProtocolVersion uint32 `json:"protocolVersion"`
		Sequence        uint32 `json:"sequence"`
	}
)

// toContractEvent decodes the XDR topics and value of the event.
func (e EventResponse) toContractEvent() (stream.ContractEvent, error) {
	topics := make([]any, 0, len(e.Topic))
	for _, raw := range e.Topic {
		topic, err := scval.DecodeBase64(raw)
		if err != nil {
			return stream.ContractEvent{}, fmt.Errorf("event %s topic: %w", e.ID, err)
		}

		topics = append(topics, topic)
	}

	var value any
	if e.Value != "" {
		v, err := scval.DecodeBase64(e.Value)
		if err != nil {
			return stream.ContractEvent{}, fmt.Errorf("event %s value: %w", e.ID, err)
		}
		value = v
	}

	return stream.ContractEvent{
		ID:         e.ID,
		Ledger:     e.Ledger,
		ContractID: e.ContractID,
		Topics:     topics,
		Value:      value,
	}, nil
}

// LatestLedger implements the streampay.Events interface.
func (c *client) LatestLedger(ctx context.Context) (uint32, error) {
	data, err := c.conn.Call(ctx, "getLatestLedger", nil)
	if err != nil {
		return 0, err
	}

	var res GetLatestLedgerResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return 0, err
	}

	return res.Sequence, nil
}

// getEventsPage requests one page of contract events. The first page starts
// at startLedger; the following ones continue from cursor.
func (c *client) getEventsPage(ctx context.Context, contractID string, startLedger uint32, cursor string) (GetEventsResponse, error) {
	params := map[string]any{
		"filters": []map[string]any{{
			"type":        "contract",
			"contractIds": []string{contractID},
		}},
	}

	pagination := map[string]any{"limit": eventsPageSize}
	if cursor != "" {
		pagination["cursor"] = cursor
	} else {
		params["startLedger"] = startLedger
	}
	params["pagination"] = pagination

	data, err := c.conn.Call(ctx, "getEvents", params)
	if err != nil {
		return GetEventsResponse{}, err
	}

	var res GetEventsResponse
	return res, json.Unmarshal(data, &res)
}

// GetEvents implements the streampay.Events interface. It pages through every
// event of contractID from startLedger on and keeps those whose first topic
// is the symbol topic. Pages are fetched one at a time.
func (c *client) GetEvents(ctx context.Context, contractID, topic string, startLedger uint32) ([]stream.ContractEvent, error) {
	var (
		events []stream.ContractEvent
		cursor string
	)

	for {
		page, err := c.getEventsPage(ctx, contractID, startLedger, cursor)
		if err != nil {
			return nil, err
		}

		for _, e := range page.Events {
			event, err := e.toContractEvent()
			if err != nil {
				return nil, err
			}

			if len(event.Topics) > 0 && event.Topics[0] == topic {
				events = append(events, event)
			}
		}

		if len(page.Events) < eventsPageSize || page.Cursor == "" || page.Cursor == cursor {
			return events, nil
		}

		cursor = page.Cursor
	}
}
