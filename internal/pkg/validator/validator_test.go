package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	account  = "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7"
	contract = "CAAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQC526"
)

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		type TestStruct struct {
			Name string `validate:"required"`
		}

		err := gvalidator.New().Struct(TestStruct{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Name': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("connection refused")
		assert.Equal(t, originalErr, formatError(originalErr))
	})
}

func TestValidate(t *testing.T) {
	type Settings struct {
		RPCURL     string `validate:"required,url"`
		Contract   string `validate:"required,stellar_address"`
		Source     string `validate:"omitempty,stellar_address"`
		MaxRetries uint   `validate:"max=10"`
	}

	t.Run("should pass with valid addresses", func(t *testing.T) {
		err := Validate(Settings{
			RPCURL:   "https://soroban-testnet.stellar.org",
			Contract: contract,
			Source:   account,
		})
		assert.NoError(t, err)
	})

	t.Run("should skip optional empty addresses", func(t *testing.T) {
		err := Validate(Settings{RPCURL: "https://rpc.example", Contract: contract})
		assert.NoError(t, err)
	})

	t.Run("should fail for a malformed address", func(t *testing.T) {
		err := Validate(Settings{RPCURL: "https://rpc.example", Contract: "CABC"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Contract': value 'CABC' does not meet the requirements for the 'stellar_address' validation")
	})

	t.Run("should report every failing field", func(t *testing.T) {
		err := Validate(Settings{Source: "nope", MaxRetries: 11})
		require.Error(t, err)

		errStr := err.Error()
		assert.Contains(t, errStr, "'RPCURL'")
		assert.Contains(t, errStr, "'Contract'")
		assert.Contains(t, errStr, "'Source'")
		assert.Contains(t, errStr, "'MaxRetries'")
	})

	t.Run("should fail when input is not struct", func(t *testing.T) {
		for _, input := range []any{"test string", 42, nil} {
			assert.Error(t, Validate(input))
		}
	})
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var(account, "required,stellar_address"))
	assert.ErrorIs(t, Var("", "required,stellar_address"), ErrValidationFailed)
	assert.ErrorIs(t, Var("SAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7", "stellar_address"), ErrValidationFailed)
}
