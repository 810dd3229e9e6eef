package streampay

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/pkg/logger"
	"github.com/gabapcia/streampay/internal/stellar/scval"
	"github.com/gabapcia/streampay/internal/stream"
	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/stellar/go-stellar-sdk/xdr"
)

var errSignerRequired = &chainerr.ValidationError{Field: "signer", Message: "is required"}

func (s *service) CreateStream(ctx context.Context, signer txpipeline.Signer, params CreateStreamParams) (stream.TransactionResult[uint64], error) {
	if err := validateCreateStream(params); err != nil {
		return stream.TransactionResult[uint64]{}, err
	}

	if signer == nil {
		return stream.TransactionResult[uint64]{}, errSignerRequired
	}

	args, err := createStreamArgs(signer.Address(), params)
	if err != nil {
		return stream.TransactionResult[uint64]{}, fail(err)
	}

	out, err := s.invoke(ctx, signer, s.streamCall("create_stream", args...), noStream)
	if err != nil {
		return stream.TransactionResult[uint64]{}, fail(err)
	}

	res := stream.TransactionResult[uint64]{Hash: out.Hash, Success: true, Ledger: out.Ledger}
	if out.ReturnValue != nil {
		id, err := stream.ToInt(out.ReturnValue)
		if err != nil || !id.IsUint64() {
			logger.Warn(ctx, "stream created with an unreadable id", "tx.hash", out.Hash, "return_value", out.ReturnValue)
		} else {
			streamID := id.Uint64()
			res.Result = &streamID
		}
	}

	logger.Info(ctx, "stream created", "tx.hash", out.Hash, "recipient", params.Recipient)
	return res, nil
}

func createStreamArgs(sender string, p CreateStreamParams) ([]xdr.ScVal, error) {
	addrs := make([]xdr.ScVal, 0, 3)
	for _, a := range []string{sender, p.Recipient, p.Token} {
		v, err := scval.Address(a)
		if err != nil {
			return nil, err
		}

		addrs = append(addrs, v)
	}

	total, err := scval.I128(p.TotalAmount)
	if err != nil {
		return nil, &chainerr.ValidationError{Field: "totalAmount", Message: err.Error()}
	}

	return append(addrs, total, scval.U64(p.StartTime), scval.U64(p.EndTime)), nil
}

func (s *service) Withdraw(ctx context.Context, signer txpipeline.Signer, streamID uint64, amount sdkmath.Int) (stream.TransactionResult[struct{}], error) {
	if err := validateWithdraw(amount); err != nil {
		return stream.TransactionResult[struct{}]{}, err
	}

	if signer == nil {
		return stream.TransactionResult[struct{}]{}, errSignerRequired
	}

	amountVal, err := scval.I128(amount)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, &chainerr.ValidationError{Field: "amount", Message: err.Error()}
	}

	available, err := s.GetWithdrawableAmount(ctx, streamID)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, err
	}

	if amount.GT(available) {
		return stream.TransactionResult[struct{}]{}, &chainerr.InsufficientFundsError{Required: amount, Available: available}
	}

	return s.invokeVoid(ctx, signer, s.streamCall("withdraw", scval.U64(streamID), amountVal), streamID)
}

func (s *service) WithdrawMax(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error) {
	return s.invokeVoid(ctx, signer, s.streamCall("withdraw_max", scval.U64(streamID)), streamID)
}

func (s *service) PauseStream(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error) {
	return s.invokeVoid(ctx, signer, s.streamCall("pause_stream", scval.U64(streamID)), streamID)
}

func (s *service) ResumeStream(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error) {
	return s.invokeVoid(ctx, signer, s.streamCall("resume_stream", scval.U64(streamID)), streamID)
}

func (s *service) CancelStream(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error) {
	return s.invokeVoid(ctx, signer, s.streamCall("cancel_stream", scval.U64(streamID)), streamID)
}

func (s *service) Distribute(ctx context.Context, signer txpipeline.Signer, token string, recipients []string, amounts []sdkmath.Int) (stream.TransactionResult[struct{}], error) {
	if err := validateDistribute(token, recipients, amounts); err != nil {
		return stream.TransactionResult[struct{}]{}, err
	}

	if signer == nil {
		return stream.TransactionResult[struct{}]{}, errSignerRequired
	}

	args, err := distributionArgs(signer.Address(), token)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, fail(err)
	}

	recipientsVal, err := scval.AddressVec(recipients)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, fail(err)
	}

	amountsVal, err := scval.I128Vec(amounts)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, &chainerr.ValidationError{Field: "amounts", Message: err.Error()}
	}

	inv, err := s.distributorCall("distribute_weighted", append(args, recipientsVal, amountsVal)...)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, err
	}

	return s.invokeVoid(ctx, signer, inv, noStream)
}

func (s *service) DistributeEqual(ctx context.Context, signer txpipeline.Signer, token string, recipients []string, totalAmount sdkmath.Int) (stream.TransactionResult[struct{}], error) {
	if err := validateDistributeEqual(token, recipients, totalAmount); err != nil {
		return stream.TransactionResult[struct{}]{}, err
	}

	if signer == nil {
		return stream.TransactionResult[struct{}]{}, errSignerRequired
	}

	args, err := distributionArgs(signer.Address(), token)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, fail(err)
	}

	total, err := scval.I128(totalAmount)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, &chainerr.ValidationError{Field: "totalAmount", Message: err.Error()}
	}

	recipientsVal, err := scval.AddressVec(recipients)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, fail(err)
	}

	inv, err := s.distributorCall("distribute_equal", append(args, total, recipientsVal)...)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, err
	}

	return s.invokeVoid(ctx, signer, inv, noStream)
}

// distributionArgs encodes the sender and token leading both distributor calls.
func distributionArgs(sender, token string) ([]xdr.ScVal, error) {
	senderVal, err := scval.Address(sender)
	if err != nil {
		return nil, err
	}

	tokenVal, err := scval.Address(token)
	if err != nil {
		return nil, err
	}

	return []xdr.ScVal{senderVal, tokenVal}, nil
}
