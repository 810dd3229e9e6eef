package scval

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Decode converts an ScVal into plain Go values:
//
//	bool                  -> bool
//	u32, i32              -> uint32, int32
//	u64, i64, timepoint,
//	duration              -> uint64, int64, uint64, uint64
//	u128, i128            -> sdkmath.Int
//	bytes                 -> []byte
//	string, symbol        -> string
//	address               -> string (G... or C...)
//	vec                   -> []any
//	map                   -> map[string]any
//	void                  -> nil
//
// Map keys are rendered with fmt when they are not strings or symbols.
func Decode(v xdr.ScVal) (any, error) {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil, nil
	case xdr.ScValTypeScvBool:
		return bool(*v.B), nil
	case xdr.ScValTypeScvU32:
		return uint32(*v.U32), nil
	case xdr.ScValTypeScvI32:
		return int32(*v.I32), nil
	case xdr.ScValTypeScvU64:
		return uint64(*v.U64), nil
	case xdr.ScValTypeScvI64:
		return int64(*v.I64), nil
	case xdr.ScValTypeScvTimepoint:
		return uint64(*v.Timepoint), nil
	case xdr.ScValTypeScvDuration:
		return uint64(*v.Duration), nil
	case xdr.ScValTypeScvU128:
		return u128(*v.U128), nil
	case xdr.ScValTypeScvI128:
		return i128(*v.I128), nil
	case xdr.ScValTypeScvBytes:
		return []byte(*v.Bytes), nil
	case xdr.ScValTypeScvString:
		return string(*v.Str), nil
	case xdr.ScValTypeScvSymbol:
		return string(*v.Sym), nil
	case xdr.ScValTypeScvAddress:
		return addressString(*v.Address)
	case xdr.ScValTypeScvVec:
		return decodeVec(v)
	case xdr.ScValTypeScvMap:
		return decodeMap(v)
	default:
		return nil, fmt.Errorf("unsupported contract value type %s", v.Type)
	}
}

// DecodeBase64 decodes a base64 XDR-encoded ScVal and then its Go value.
func DecodeBase64(s string) (any, error) {
	var v xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(s, &v); err != nil {
		return nil, fmt.Errorf("decode contract value: %w", err)
	}

	return Decode(v)
}

func u128(p xdr.UInt128Parts) sdkmath.Int {
	b := new(big.Int).SetUint64(uint64(p.Hi))
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(uint64(p.Lo)))
	return sdkmath.NewIntFromBigInt(b)
}

func i128(p xdr.Int128Parts) sdkmath.Int {
	b := big.NewInt(int64(p.Hi))
	b.Lsh(b, 64)
	b.Add(b, new(big.Int).SetUint64(uint64(p.Lo)))
	return sdkmath.NewIntFromBigInt(b)
}

func addressString(a xdr.ScAddress) (string, error) {
	switch a.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		return a.AccountId.Address(), nil
	case xdr.ScAddressTypeScAddressTypeContract:
		return strkey.Encode(strkey.VersionByteContract, a.ContractId[:])
	default:
		return "", fmt.Errorf("unsupported address type %s", a.Type)
	}
}

func decodeVec(v xdr.ScVal) ([]any, error) {
	if v.Vec == nil || *v.Vec == nil {
		return []any{}, nil
	}

	vec := **v.Vec
	out := make([]any, 0, len(vec))
	for i, item := range vec {
		d, err := Decode(item)
		if err != nil {
			return nil, fmt.Errorf("vec[%d]: %w", i, err)
		}

		out = append(out, d)
	}

	return out, nil
}

func decodeMap(v xdr.ScVal) (map[string]any, error) {
	if v.Map == nil || *v.Map == nil {
		return map[string]any{}, nil
	}

	entries := **v.Map
	out := make(map[string]any, len(entries))
	for _, entry := range entries {
		key, err := Decode(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}

		name, ok := key.(string)
		if !ok {
			name = fmt.Sprint(key)
		}

		val, err := Decode(entry.Val)
		if err != nil {
			return nil, fmt.Errorf("map[%s]: %w", name, err)
		}

		out[name] = val
	}

	return out, nil
}
