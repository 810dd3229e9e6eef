package streampay

import (
	"context"
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/pkg/logger"
	"github.com/gabapcia/streampay/internal/pkg/resilience/retry"
	"github.com/gabapcia/streampay/internal/pkg/types"
	"github.com/gabapcia/streampay/internal/pkg/x/chflow"
	"github.com/gabapcia/streampay/internal/stellar/scval"
	"github.com/gabapcia/streampay/internal/stream"
)

// streamCreatedTopic is the first topic of the event emitted for every new stream.
const streamCreatedTopic = "stream_created"

func (s *service) GetAccount(ctx context.Context, accountID string) (stream.AccountInfo, error) {
	if err := validateAddress("accountId", accountID); err != nil {
		return stream.AccountInfo{}, err
	}

	info, err := retry.Do(ctx, s.retry, func() (stream.AccountInfo, error) {
		return s.ledger.GetAccount(ctx, accountID)
	})
	if err != nil {
		return stream.AccountInfo{}, fail(err)
	}

	return info, nil
}

func (s *service) AccountExists(ctx context.Context, accountID string) (bool, error) {
	_, err := s.GetAccount(ctx, accountID)
	switch chainerr.KindOf(err) {
	case "":
		return true, nil
	case chainerr.KindAccountNotFound:
		return false, nil
	default:
		return false, err
	}
}

func (s *service) GetStream(ctx context.Context, streamID uint64) (stream.Stream, error) {
	ctx = logger.Derive(ctx, "stream.id", streamID)

	raw, err := s.query(ctx, s.streamCall("get_stream", scval.U64(streamID)), streamID)
	if err != nil {
		return stream.Stream{}, fail(err)
	}

	if raw == nil {
		return stream.Stream{}, &chainerr.StreamNotFoundError{StreamID: streamID}
	}

	st, err := stream.ParseStream(raw)
	if err != nil {
		return stream.Stream{}, fail(err)
	}

	return st, nil
}

func (s *service) GetWithdrawableAmount(ctx context.Context, streamID uint64) (sdkmath.Int, error) {
	raw, err := s.query(ctx, s.streamCall("withdrawable_amount", scval.U64(streamID)), streamID)
	if err != nil {
		return sdkmath.Int{}, fail(err)
	}

	amount, err := stream.ToInt(raw)
	if err != nil {
		return sdkmath.Int{}, fail(fmt.Errorf("decode withdrawable amount of stream %d: %w", streamID, err))
	}

	return amount, nil
}

func (s *service) GetStreams(ctx context.Context, address string) ([]stream.Stream, error) {
	if err := validateAddress("address", address); err != nil {
		return nil, err
	}

	ids, err := s.streamIDs(ctx)
	if err != nil {
		return nil, fail(err)
	}
	logger.Debug(ctx, "scanning streams", "address", address, "stream.count", len(ids))

	return s.fetchStreams(ctx, ids, address)
}

type scanResult struct {
	index  int
	stream stream.Stream
	err    error
}

// fetchStreams reads the streams in ids with up to ScanConcurrency queries in
// flight and keeps, in id order, those involving address. Streams that
// disappear mid-scan are skipped; any other failure stops the scan.
func (s *service) fetchStreams(ctx context.Context, ids []uint64, address string) ([]stream.Stream, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make(chan scanResult)

	var wg sync.WaitGroup
	for range min(max(s.cfg.ScanConcurrency, 1), len(ids)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i, ok := chflow.Receive(ctx, jobs)
				if !ok {
					return
				}

				st, err := s.GetStream(ctx, ids[i])
				if !chflow.Send(ctx, results, scanResult{index: i, stream: st, err: err}) {
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range ids {
			if !chflow.Send(ctx, jobs, i) {
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	matched := make([]*stream.Stream, len(ids))
	for res := range results {
		if res.err != nil {
			if chainerr.KindOf(res.err) == chainerr.KindStreamNotFound {
				logger.Debug(ctx, "stream vanished during scan", "stream.id", ids[res.index])
				continue
			}

			return nil, res.err
		}

		if res.stream.Involves(address) {
			matched[res.index] = &res.stream
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(err)
	}

	streams := make([]stream.Stream, 0)
	for _, st := range matched {
		if st != nil {
			streams = append(streams, *st)
		}
	}

	return streams, nil
}

// streamIDs lists every stream id, from the contract's stream count when it
// exposes one and from its creation events otherwise.
func (s *service) streamIDs(ctx context.Context) ([]uint64, error) {
	if s.cfg.StreamCountMethod != "" {
		count, err := s.streamCount(ctx)
		if err == nil {
			ids := make([]uint64, 0, count)
			for id := uint64(1); id <= count; id++ {
				ids = append(ids, id)
			}

			return ids, nil
		}

		switch chainerr.KindOf(err) {
		case chainerr.KindSimulation, chainerr.KindContract:
			logger.Info(ctx, "stream count unavailable, scanning creation events", "error", err)
		default:
			return nil, err
		}
	}

	return s.streamIDsFromEvents(ctx)
}

// streamCount is not retried: a contract without the method fails the same
// way every time.
func (s *service) streamCount(ctx context.Context) (uint64, error) {
	inv := s.streamCall(s.cfg.StreamCountMethod)

	raw, err := s.pipeline.Query(ctx, s.cfg.SourceAccount, inv)
	if err != nil {
		return 0, contractFailure(err, inv, noStream)
	}

	n, err := stream.ToInt(raw)
	if err != nil || n.IsNegative() || !n.IsUint64() {
		return 0, &chainerr.ContractError{
			ContractID: inv.ContractID,
			Method:     inv.Method,
			Err:        fmt.Errorf("unexpected stream count %v", raw),
		}
	}

	return n.Uint64(), nil
}

func (s *service) streamIDsFromEvents(ctx context.Context) ([]uint64, error) {
	latest, err := retry.Do(ctx, s.retry, func() (uint32, error) {
		return s.events.LatestLedger(ctx)
	})
	if err != nil {
		return nil, err
	}

	start := uint32(1)
	if latest > s.cfg.EventsLookback {
		start = latest - s.cfg.EventsLookback
	}

	events, err := retry.Do(ctx, s.retry, func() ([]stream.ContractEvent, error) {
		return s.events.GetEvents(ctx, s.cfg.StreamContractID, streamCreatedTopic, start)
	})
	if err != nil {
		return nil, err
	}

	ids := types.NewSet[uint64]()
	for _, ev := range events {
		id, ok := createdStreamID(ev.Value)
		if !ok {
			logger.Warn(ctx, "skipping unreadable creation event", "event.id", ev.ID, "event.ledger", ev.Ledger)
			continue
		}

		ids.Add(id)
	}

	return types.Sorted(ids), nil
}

// createdStreamID reads the stream id out of a creation event value, which
// is either the id itself or a record holding it.
func createdStreamID(value any) (uint64, bool) {
	if record, ok := value.(map[string]any); ok {
		v, found := record["stream_id"]
		if !found {
			v, found = record["streamId"]
		}
		if !found {
			return 0, false
		}

		value = v
	}

	n, err := stream.ToInt(value)
	if err != nil || !n.IsPositive() || !n.IsUint64() {
		return 0, false
	}

	return n.Uint64(), true
}
