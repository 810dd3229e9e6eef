package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
)

var (
	// ErrUnknownStatus is returned for a status the client does not recognize.
	ErrUnknownStatus = errors.New("unknown stream status")

	// ErrMalformedStream is returned when a decoded record cannot be read as a stream.
	ErrMalformedStream = errors.New("malformed stream record")
)

// ParseStatus reads a status encoded either as a plain string or as a
// single-element enum vector such as []any{"Active"}. Matching ignores case.
func ParseStatus(raw any) (Status, error) {
	if vec, ok := raw.([]any); ok && len(vec) > 0 {
		raw = vec[0]
	}

	name, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownStatus, raw)
	}

	for _, s := range []Status{StatusActive, StatusPaused, StatusCanceled, StatusCompleted} {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// ParseStream builds a Stream from a decoded contract record. Each field is
// read from its snake_case key first and its camelCase key second. Integers
// may arrive as any Go integer type, json.Number, decimal string, *big.Int,
// sdkmath.Int or an integral float64.
func ParseStream(raw any) (Stream, error) {
	record, ok := raw.(map[string]any)
	if !ok {
		return Stream{}, fmt.Errorf("%w: expected a map, got %T", ErrMalformedStream, raw)
	}

	var (
		s   Stream
		err error
	)

	if s.ID, err = uint64Field(record, "id", "id"); err != nil {
		return Stream{}, err
	}
	if s.Sender, err = stringField(record, "sender", "sender"); err != nil {
		return Stream{}, err
	}
	if s.Recipient, err = stringField(record, "recipient", "recipient"); err != nil {
		return Stream{}, err
	}
	if s.Token, err = stringField(record, "token", "token"); err != nil {
		return Stream{}, err
	}
	if s.TotalAmount, err = intField(record, "total_amount", "totalAmount"); err != nil {
		return Stream{}, err
	}
	if s.WithdrawnAmount, err = intField(record, "withdrawn_amount", "withdrawnAmount"); err != nil {
		return Stream{}, err
	}
	if s.StartTime, err = uint64Field(record, "start_time", "startTime"); err != nil {
		return Stream{}, err
	}
	if s.EndTime, err = uint64Field(record, "end_time", "endTime"); err != nil {
		return Stream{}, err
	}

	status, ok := coalesce(record, "status", "status")
	if !ok {
		return Stream{}, fmt.Errorf("%w: missing status", ErrMalformedStream)
	}
	if s.Status, err = ParseStatus(status); err != nil {
		return Stream{}, err
	}

	if err := s.Validate(); err != nil {
		return Stream{}, err
	}

	return s, nil
}

// coalesce returns record[snake], falling back to record[camel].
func coalesce(record map[string]any, snake, camel string) (any, bool) {
	if v, ok := record[snake]; ok && v != nil {
		return v, true
	}

	if v, ok := record[camel]; ok && v != nil {
		return v, true
	}

	return nil, false
}

func stringField(record map[string]any, snake, camel string) (string, error) {
	v, ok := coalesce(record, snake, camel)
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedStream, camel)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not a string", ErrMalformedStream, camel, v)
	}

	return s, nil
}

func uint64Field(record map[string]any, snake, camel string) (uint64, error) {
	v, ok := coalesce(record, snake, camel)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedStream, camel)
	}

	n, err := ToInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformedStream, camel, err)
	}

	if n.IsNegative() || !n.IsUint64() {
		return 0, fmt.Errorf("%w: %s %s does not fit in u64", ErrMalformedStream, camel, n)
	}

	return n.Uint64(), nil
}

func intField(record map[string]any, snake, camel string) (sdkmath.Int, error) {
	v, ok := coalesce(record, snake, camel)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("%w: missing %s", ErrMalformedStream, camel)
	}

	n, err := ToInt(v)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("%w: %s: %w", ErrMalformedStream, camel, err)
	}

	return n, nil
}

// ToInt coerces a numeric-like decoded value into an sdkmath.Int.
func ToInt(v any) (sdkmath.Int, error) {
	switch n := v.(type) {
	case sdkmath.Int:
		if n.IsNil() {
			return sdkmath.Int{}, errors.New("nil integer")
		}
		return n, nil
	case *big.Int:
		if n == nil {
			return sdkmath.Int{}, errors.New("nil integer")
		}
		return sdkmath.NewIntFromBigInt(n), nil
	case int:
		return sdkmath.NewInt(int64(n)), nil
	case int32:
		return sdkmath.NewInt(int64(n)), nil
	case int64:
		return sdkmath.NewInt(n), nil
	case uint32:
		return sdkmath.NewIntFromUint64(uint64(n)), nil
	case uint64:
		return sdkmath.NewIntFromUint64(n), nil
	case uint:
		return sdkmath.NewIntFromUint64(uint64(n)), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return sdkmath.Int{}, fmt.Errorf("%v is not an integer", n)
		}
		b, _ := big.NewFloat(n).Int(nil)
		return sdkmath.NewIntFromBigInt(b), nil
	case json.Number:
		return parseIntString(n.String())
	case string:
		return parseIntString(n)
	default:
		return sdkmath.Int{}, fmt.Errorf("unsupported numeric type %T", v)
	}
}

func parseIntString(s string) (sdkmath.Int, error) {
	n, ok := sdkmath.NewIntFromString(strings.TrimSpace(s))
	if !ok {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return sdkmath.Int{}, fmt.Errorf("%q is not an integer", s)
		}
		return sdkmath.Int{}, fmt.Errorf("invalid integer %q", s)
	}

	return n, nil
}
