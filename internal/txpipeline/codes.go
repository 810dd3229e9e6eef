package txpipeline

import (
	"strings"
	"unicode"

	"github.com/gabapcia/streampay/internal/chainerr"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// resultCodes decodes a base64 TransactionResult into the snake_case codes
// used by the ledger API, e.g. "tx_failed" and "invoke_host_function_trapped".
// It returns nil when resultXDR is empty or cannot be decoded.
func resultCodes(resultXDR string) *chainerr.ResultCodes {
	if resultXDR == "" {
		return nil
	}

	var result xdr.TransactionResult
	if err := xdr.SafeUnmarshalBase64(resultXDR, &result); err != nil {
		return nil
	}

	codes := &chainerr.ResultCodes{
		Transaction: snakeCode(result.Result.Code.String(), "TransactionResultCode"),
	}

	ops, _ := result.Result.GetResults()
	for _, op := range ops {
		if op.Code != xdr.OperationResultCodeOpInner || op.Tr == nil {
			codes.Operations = append(codes.Operations, snakeCode(op.Code.String(), "OperationResultCode"))
			continue
		}

		if invoke, ok := op.Tr.GetInvokeHostFunctionResult(); ok {
			codes.Operations = append(codes.Operations, snakeCode(invoke.Code.String(), "InvokeHostFunctionResultCode"))
		}
	}

	return codes
}

// snakeCode converts an XDR enum name such as "TransactionResultCodeTxBadSeq"
// into "tx_bad_seq".
func snakeCode(name, prefix string) string {
	name = strings.TrimPrefix(name, prefix)

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
