// Package scval converts between Go values and Soroban contract values
// (xdr.ScVal): typed constructors for invocation arguments and a generic
// decoder for return values.
package scval

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/streampay/internal/stellar/address"

	sdkmath "cosmossdk.io/math"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ErrOutOfRange is returned when an integer does not fit the target ScVal type.
var ErrOutOfRange = errors.New("integer out of range")

var (
	two64   = new(big.Int).Lsh(big.NewInt(1), 64)
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	mask64  = new(big.Int).Sub(two64, big.NewInt(1))
)

// ScAddress decodes an account (G...) or contract (C...) identifier.
func ScAddress(s string) (xdr.ScAddress, error) {
	switch address.KindOf(s) {
	case address.KindAccount:
		accountID, err := xdr.AddressToAccountId(s)
		if err != nil {
			return xdr.ScAddress{}, fmt.Errorf("decode account %q: %w", s, err)
		}

		return xdr.ScAddress{
			Type:      xdr.ScAddressTypeScAddressTypeAccount,
			AccountId: &accountID,
		}, nil
	case address.KindContract:
		raw, err := strkey.Decode(strkey.VersionByteContract, s)
		if err != nil {
			return xdr.ScAddress{}, fmt.Errorf("decode contract %q: %w", s, err)
		}

		var contractID xdr.ContractId
		copy(contractID[:], raw)

		return xdr.ScAddress{
			Type:       xdr.ScAddressTypeScAddressTypeContract,
			ContractId: &contractID,
		}, nil
	default:
		return xdr.ScAddress{}, fmt.Errorf("invalid address %q", s)
	}
}

// Address encodes an account or contract identifier as an ScVal.
func Address(s string) (xdr.ScVal, error) {
	addr, err := ScAddress(s)
	if err != nil {
		return xdr.ScVal{}, err
	}

	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
}

// U64 encodes an unsigned 64-bit integer.
func U64(v uint64) xdr.ScVal {
	u := xdr.Uint64(v)
	return xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &u}
}

// U32 encodes an unsigned 32-bit integer.
func U32(v uint32) xdr.ScVal {
	u := xdr.Uint32(v)
	return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u}
}

// Symbol encodes a contract symbol.
func Symbol(s string) xdr.ScVal {
	sym := xdr.ScSymbol(s)
	return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym}
}

// I128 encodes a signed 128-bit integer. It fails with ErrOutOfRange when v
// does not fit in 128 bits and rejects a nil Int.
func I128(v sdkmath.Int) (xdr.ScVal, error) {
	if v.IsNil() {
		return xdr.ScVal{}, fmt.Errorf("%w: nil amount", ErrOutOfRange)
	}

	b := v.BigInt()
	if b.Cmp(minI128) < 0 || b.Cmp(maxI128) > 0 {
		return xdr.ScVal{}, fmt.Errorf("%w: %s does not fit in i128", ErrOutOfRange, v)
	}

	if b.Sign() < 0 {
		b.Add(b, two128)
	}

	lo := new(big.Int).And(b, mask64).Uint64()
	hi := new(big.Int).Rsh(b, 64).Uint64()

	parts := xdr.Int128Parts{Hi: xdr.Int64(int64(hi)), Lo: xdr.Uint64(lo)}
	return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &parts}, nil
}

// Vec builds a vector ScVal.
func Vec(items ...xdr.ScVal) xdr.ScVal {
	vec := xdr.ScVec(items)
	ptr := &vec
	return xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &ptr}
}

// AddressVec encodes a list of identifiers as a vector of addresses.
func AddressVec(addrs []string) (xdr.ScVal, error) {
	items := make([]xdr.ScVal, 0, len(addrs))
	for _, a := range addrs {
		v, err := Address(a)
		if err != nil {
			return xdr.ScVal{}, err
		}

		items = append(items, v)
	}

	return Vec(items...), nil
}

// I128Vec encodes a list of amounts as a vector of i128 values.
func I128Vec(amounts []sdkmath.Int) (xdr.ScVal, error) {
	items := make([]xdr.ScVal, 0, len(amounts))
	for _, a := range amounts {
		v, err := I128(a)
		if err != nil {
			return xdr.ScVal{}, err
		}

		items = append(items, v)
	}

	return Vec(items...), nil
}
