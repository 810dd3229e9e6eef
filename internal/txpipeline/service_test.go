package txpipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/streampay/internal/stellar/scval"

	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	account    = "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7"
	contractID = "CAAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQC526"
)

func encode(t *testing.T, v any) string {
	t.Helper()

	s, err := xdr.MarshalBase64(v)
	require.NoError(t, err)
	return s
}

func newTestService(accounts AccountSource, rpc RPC, opts ...Option) *service {
	return New(accounts, rpc, append([]Option{
		WithPollInterval(time.Millisecond),
		WithPollTimeout(time.Second),
	}, opts...)...)
}

func invocation() Invocation {
	return Invocation{
		ContractID: contractID,
		Method:     "create_stream",
		Args:       []xdr.ScVal{scval.U64(1)},
	}
}

func TestService_Invoke(t *testing.T) {
	t.Run("submits and polls until the transaction succeeds", func(t *testing.T) {
		seven := encode(t, scval.U64(7))

		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(100), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.AnythingOfType("string")).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
			MinResourceFee:     1000,
			Results:            []SimulationResult{{ReturnValueXDR: seven}},
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Hash: "abc", Status: SendStatusPending}, nil).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{Status: TxStatusNotFound}, nil).Times(3)
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{
			Status:         TxStatusSuccess,
			Ledger:         1000,
			ReturnValueXDR: seven,
		}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.AnythingOfType("string"), network.TestNetworkPassphrase).
			RunAndReturn(func(_ context.Context, envelope, _ string) (string, error) {
				var env xdr.TransactionEnvelope
				require.NoError(t, xdr.SafeUnmarshalBase64(envelope, &env))
				assert.Equal(t, int64(101), env.SeqNum())
				assert.Len(t, env.Operations(), 1)
				return "signed", nil
			}).Once()

		out, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		require.NoError(t, err)
		assert.Equal(t, Outcome{Hash: "abc", Ledger: 1000, ReturnValue: uint64(7)}, out)
	})

	t.Run("a duplicate submission is still confirmed", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Status: SendStatusDuplicate}, nil).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, mock.AnythingOfType("string")).
			Return(TransactionStatus{Status: TxStatusSuccess, Ledger: 5}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		out, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		require.NoError(t, err)
		assert.Len(t, out.Hash, 64, "the locally computed hash is used when the node returns none")
		assert.Equal(t, uint32(5), out.Ledger)
		assert.Nil(t, out.ReturnValue)
	})

	t.Run("times out when the transaction never becomes final", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Hash: "abc", Status: SendStatusPending}, nil).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{Status: TxStatusNotFound}, nil)

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc, WithPollTimeout(20*time.Millisecond)).Invoke(t.Context(), signer, invocation())

		var timeout *chainerr.TransactionTimeoutError
		require.ErrorAs(t, err, &timeout)
		assert.Equal(t, "abc", timeout.TxHash)
		assert.Equal(t, 20*time.Millisecond, timeout.Timeout)
		assert.Equal(t, chainerr.KindTransactionTimeout, chainerr.KindOf(err))
	})

	t.Run("lookup errors do not stop polling", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Hash: "abc", Status: SendStatusPending}, nil).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{}, errors.New("connection reset")).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{Status: TxStatusSuccess, Ledger: 9}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		out, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		require.NoError(t, err)
		assert.Equal(t, uint32(9), out.Ledger)
	})

	t.Run("a lost send response is resolved by polling the local hash", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{}, errors.New("read tcp: connection reset by peer")).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, mock.AnythingOfType("string")).
			Return(TransactionStatus{Status: TxStatusSuccess, Ledger: 12}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		out, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		require.NoError(t, err)
		assert.Len(t, out.Hash, 64)
		assert.Equal(t, uint32(12), out.Ledger)
	})

	t.Run("a lost send response that never lands times out", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{}, errors.New("connection reset")).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, mock.AnythingOfType("string")).
			Return(TransactionStatus{Status: TxStatusNotFound}, nil)

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc, WithPollTimeout(20*time.Millisecond)).Invoke(t.Context(), signer, invocation())

		var timeout *chainerr.TransactionTimeoutError
		require.ErrorAs(t, err, &timeout)
		assert.Len(t, timeout.TxHash, 64)
		assert.False(t, chainerr.IsRetryable(err))
	})

	t.Run("a refused send is not polled", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").
			Return(Submission{}, &jsonrpc.ProviderError{Code: -32602, Message: "invalid parameters"}).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		var txErr *chainerr.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, -32602, txErr.RPCCode)
		assert.False(t, chainerr.IsRetryable(err))
	})

	t.Run("an unexpected status stops polling", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Hash: "abc", Status: SendStatusPending}, nil).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{Status: "EXPIRED"}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		assert.Equal(t, chainerr.KindUnknown, chainerr.KindOf(err))
		assert.ErrorContains(t, err, "EXPIRED")
	})

	t.Run("a failed transaction carries its hash", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Hash: "abc", Status: SendStatusPending}, nil).Once()
		rpc.EXPECT().GetTransaction(mock.Anything, "abc").Return(TransactionStatus{Status: TxStatusFailed, Ledger: 3}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		var txErr *chainerr.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, "abc", txErr.TxHash)
	})

	t.Run("a rejected submission reports the result codes", func(t *testing.T) {
		result := xdr.TransactionResult{
			FeeCharged: 100,
			Result:     xdr.TransactionResultResult{Code: xdr.TransactionResultCodeTxBadSeq},
		}
		resultXDR := encode(t, result)

		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{
			Hash:           "abc",
			Status:         SendStatusError,
			ErrorResultXDR: resultXDR,
		}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		var txErr *chainerr.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, "abc", txErr.TxHash)
		assert.Equal(t, resultXDR, txErr.ResultXDR)
		require.NotNil(t, txErr.ResultCodes)
		assert.Equal(t, "tx_bad_seq", txErr.ResultCodes.Transaction)
	})

	t.Run("try again later is a network error", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "signed").Return(Submission{Hash: "abc", Status: SendStatusTryAgainLater}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("signed", nil).Once()

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		assert.Equal(t, chainerr.KindNetwork, chainerr.KindOf(err))
		assert.True(t, chainerr.IsRetryable(err))
	})

	t.Run("simulation failure keeps the raw response", func(t *testing.T) {
		raw := json.RawMessage(`{"error":"HostError: Error(Contract, #6)","latestLedger":10}`)

		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			Error: "HostError: Error(Contract, #6)",
			Raw:   raw,
		}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		var simErr *chainerr.SimulationError
		require.ErrorAs(t, err, &simErr)
		assert.Equal(t, "HostError: Error(Contract, #6)", simErr.Message)
		assert.JSONEq(t, string(raw), string(simErr.Result))
		code, ok := chainerr.ContractCode(err)
		assert.True(t, ok)
		assert.Equal(t, uint32(6), code)
	})

	t.Run("archived entries stop the invocation", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{RestorePreamble: true}, nil).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		assert.Equal(t, chainerr.KindSimulation, chainerr.KindOf(err))
	})

	t.Run("an undecodable contract address never reaches the network", func(t *testing.T) {
		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)

		inv := invocation()
		inv.ContractID = "not-a-contract"

		_, err := newTestService(NewAccountSourceMock(t), NewRPCMock(t)).Invoke(t.Context(), signer, inv)

		var contractErr *chainerr.ContractError
		require.ErrorAs(t, err, &contractErr)
		assert.Equal(t, "not-a-contract", contractErr.ContractID)
		assert.Equal(t, "create_stream", contractErr.Method)
	})

	t.Run("unknown accounts are classified", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).
			Return(int64(0), &chainerr.AccountNotFoundError{AccountID: account}).Once()

		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)

		_, err := newTestService(accounts, NewRPCMock(t)).Invoke(t.Context(), signer, invocation())

		assert.Equal(t, chainerr.KindAccountNotFound, chainerr.KindOf(err))
	})

	t.Run("signing errors are wrapped", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			TransactionDataXDR: encode(t, xdr.SorobanTransactionData{}),
		}, nil).Once()

		signErr := errors.New("hardware wallet unplugged")
		signer := NewSignerMock(t)
		signer.EXPECT().Address().Return(account)
		signer.EXPECT().Sign(mock.Anything, mock.Anything, mock.Anything).Return("", signErr).Once()

		_, err := newTestService(accounts, rpc).Invoke(t.Context(), signer, invocation())

		assert.ErrorIs(t, err, signErr)
	})
}

func TestService_Query(t *testing.T) {
	t.Run("returns the simulated value", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{
			Results: []SimulationResult{{ReturnValueXDR: encode(t, scval.Symbol("Active"))}},
		}, nil).Once()

		v, err := newTestService(accounts, rpc).Query(t.Context(), account, invocation())

		require.NoError(t, err)
		assert.Equal(t, "Active", v)
	})

	t.Run("no results yield nil", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{}, nil).Once()

		v, err := newTestService(accounts, rpc).Query(t.Context(), account, invocation())

		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("transport failures are classified", func(t *testing.T) {
		accounts := NewAccountSourceMock(t)
		accounts.EXPECT().AccountSequence(mock.Anything, account).Return(int64(1), nil).Once()

		rpc := NewRPCMock(t)
		rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(Simulation{}, context.DeadlineExceeded).Once()

		_, err := newTestService(accounts, rpc).Query(t.Context(), account, invocation())

		assert.Equal(t, chainerr.KindNetwork, chainerr.KindOf(err))
	})
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := New(nil, nil)

		assert.Equal(t, network.TestNetworkPassphrase, s.cfg.networkPassphrase)
		assert.Equal(t, int64(100), s.cfg.baseFee)
		assert.Equal(t, 30*time.Second, s.cfg.txTimeout)
		assert.Equal(t, time.Second, s.cfg.pollInterval)
		assert.Equal(t, 30*time.Second, s.cfg.pollTimeout)
	})

	t.Run("options", func(t *testing.T) {
		s := New(nil, nil,
			WithNetworkPassphrase(network.PublicNetworkPassphrase),
			WithBaseFee(10),
			WithTxTimeout(time.Minute),
			WithPollInterval(2*time.Second),
			WithPollTimeout(time.Minute),
		)

		assert.Equal(t, network.PublicNetworkPassphrase, s.cfg.networkPassphrase)
		assert.Equal(t, int64(100), s.cfg.baseFee, "fees below the network minimum are raised")
		assert.Equal(t, time.Minute, s.cfg.txTimeout)
		assert.Equal(t, 2*time.Second, s.cfg.pollInterval)
		assert.Equal(t, time.Minute, s.cfg.pollTimeout)
	})
}

func TestSnakeCode(t *testing.T) {
	assert.Equal(t, "tx_bad_seq", snakeCode("TransactionResultCodeTxBadSeq", "TransactionResultCode"))
	assert.Equal(t, "invoke_host_function_trapped", snakeCode("InvokeHostFunctionResultCodeInvokeHostFunctionTrapped", "InvokeHostFunctionResultCode"))
	assert.Nil(t, resultCodes(""))
	assert.Nil(t, resultCodes("%%%"))
}
