package txpipeline

import (
	"fmt"
	"time"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/stellar/scval"

	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// invokeOperation turns inv into an InvokeHostFunction operation. A callee
// address that cannot be decoded is reported as a ContractError.
func invokeOperation(inv Invocation) (*txnbuild.InvokeHostFunction, error) {
	contract, err := scval.ScAddress(inv.ContractID)
	if err != nil {
		return nil, &chainerr.ContractError{ContractID: inv.ContractID, Method: inv.Method, Err: err}
	}

	return &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(inv.Method),
				Args:            inv.Args,
			},
		},
	}, nil
}

// newTransaction wraps op in a transaction from source using the sequence
// number following seq.
func (s *service) newTransaction(source string, seq int64, op *txnbuild.InvokeHostFunction, fee int64) (*txnbuild.Transaction, error) {
	account := txnbuild.NewSimpleAccount(source, seq)

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              fee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(s.cfg.txTimeout / time.Second)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}

	return tx, nil
}

// assemble attaches the simulated footprint, resources and authorization
// entries to op and returns the total fee to pay.
func (s *service) assemble(op *txnbuild.InvokeHostFunction, sim Simulation) (int64, error) {
	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(sim.TransactionDataXDR, &data); err != nil {
		return 0, fmt.Errorf("decode simulated transaction data: %w", err)
	}

	op.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}

	if len(sim.Results) > 0 {
		auth := make([]xdr.SorobanAuthorizationEntry, 0, len(sim.Results[0].AuthXDR))
		for _, raw := range sim.Results[0].AuthXDR {
			var entry xdr.SorobanAuthorizationEntry
			if err := xdr.SafeUnmarshalBase64(raw, &entry); err != nil {
				return 0, fmt.Errorf("decode simulated authorization: %w", err)
			}

			auth = append(auth, entry)
		}

		op.Auth = auth
	}

	return s.cfg.baseFee + sim.MinResourceFee, nil
}

// returnValue decodes the first simulated result, or nil when there is none.
func (sim Simulation) returnValue() (any, error) {
	if len(sim.Results) == 0 || sim.Results[0].ReturnValueXDR == "" {
		return nil, nil
	}

	return scval.DecodeBase64(sim.Results[0].ReturnValueXDR)
}
