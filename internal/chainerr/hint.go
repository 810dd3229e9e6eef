package chainerr

// Hint returns user-facing guidance for a failure kind.
func Hint(kind Kind) string {
	switch kind {
	case KindNetwork:
		return "check your connection and the RPC endpoint, then try again"
	case KindTransaction:
		return "the network rejected the transaction; inspect the result codes"
	case KindTransactionTimeout:
		return "the transaction may still be applied; look it up by hash before resubmitting"
	case KindContract:
		return "the contract rejected the call; check the stream state and your permissions"
	case KindSimulation:
		return "the dry run failed; check the arguments and the account's balance"
	case KindAccountNotFound:
		return "fund this account before using it"
	case KindStreamNotFound:
		return "check the stream id"
	case KindInsufficientFunds:
		return "lower the amount or wait until more is available"
	case KindValidation:
		return "fix the highlighted field and try again"
	default:
		return ""
	}
}
