package streampay

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/pkg/validator"
)

// addressRule is the validator tag every account or contract argument must satisfy.
const addressRule = "required," + validator.StellarAddressTag

// The validate functions below stop at the first violated precondition and
// report it as a *chainerr.ValidationError. They never perform I/O.

func validateAddress(field, addr string) error {
	if err := validator.Var(addr, addressRule); err != nil {
		return &chainerr.ValidationError{Field: field, Message: "must be a valid Stellar address"}
	}

	return nil
}

func validatePositive(field string, amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return &chainerr.ValidationError{Field: field, Message: "must be greater than zero"}
	}

	return nil
}

func validateRecipients(recipients []string) error {
	if len(recipients) == 0 {
		return &chainerr.ValidationError{Field: "recipients", Message: "must not be empty"}
	}

	for i, r := range recipients {
		if err := validateAddress("recipients", r); err != nil {
			return &chainerr.ValidationError{Field: "recipients", Message: fmt.Sprintf("entry %d must be a valid Stellar address", i)}
		}
	}

	return nil
}

func validateCreateStream(p CreateStreamParams) error {
	if err := validateAddress("recipient", p.Recipient); err != nil {
		return err
	}

	if err := validateAddress("token", p.Token); err != nil {
		return err
	}

	if err := validatePositive("totalAmount", p.TotalAmount); err != nil {
		return err
	}

	if p.EndTime <= p.StartTime {
		return &chainerr.ValidationError{Field: "endTime", Message: "must be after startTime"}
	}

	return nil
}

func validateWithdraw(amount sdkmath.Int) error {
	return validatePositive("amount", amount)
}

func validateDistribute(token string, recipients []string, amounts []sdkmath.Int) error {
	if len(recipients) == 0 {
		return &chainerr.ValidationError{Field: "recipients", Message: "must not be empty"}
	}

	if len(recipients) != len(amounts) {
		return &chainerr.ValidationError{
			Field:   "amounts",
			Message: fmt.Sprintf("has %d entries for %d recipients", len(amounts), len(recipients)),
		}
	}

	if err := validateRecipients(recipients); err != nil {
		return err
	}

	for i, amount := range amounts {
		if amount.IsNil() || !amount.IsPositive() {
			return &chainerr.ValidationError{Field: "amounts", Message: fmt.Sprintf("entry %d must be greater than zero", i)}
		}
	}

	return validateAddress("token", token)
}

func validateDistributeEqual(token string, recipients []string, totalAmount sdkmath.Int) error {
	if err := validateRecipients(recipients); err != nil {
		return err
	}

	if err := validatePositive("totalAmount", totalAmount); err != nil {
		return err
	}

	return validateAddress("token", token)
}
