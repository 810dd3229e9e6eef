package chainerr

import (
	"errors"
	"regexp"
	"strconv"
)

// Error numbers raised by the payment-stream contract.
const (
	CodeAlreadyInitialized       uint32 = 1
	CodeNotInitialized           uint32 = 2
	CodeUnauthorized             uint32 = 3
	CodeInvalidAmount            uint32 = 4
	CodeInvalidTimeRange         uint32 = 5
	CodeStreamNotFound           uint32 = 6
	CodeStreamNotActive          uint32 = 7
	CodeStreamNotPaused          uint32 = 8
	CodeStreamCannotBeCanceled   uint32 = 9
	CodeInsufficientWithdrawable uint32 = 10
	CodeTransferFailed           uint32 = 11
)

var contractCodeNames = map[uint32]string{
	CodeAlreadyInitialized:       "AlreadyInitialized",
	CodeNotInitialized:           "NotInitialized",
	CodeUnauthorized:             "Unauthorized",
	CodeInvalidAmount:            "InvalidAmount",
	CodeInvalidTimeRange:         "InvalidTimeRange",
	CodeStreamNotFound:           "StreamNotFound",
	CodeStreamNotActive:          "StreamNotActive",
	CodeStreamNotPaused:          "StreamNotPaused",
	CodeStreamCannotBeCanceled:   "StreamCannotBeCanceled",
	CodeInsufficientWithdrawable: "InsufficientWithdrawable",
	CodeTransferFailed:           "TransferFailed",
}

// contractCodePattern matches host diagnostics such as "Error(Contract, #6)".
var contractCodePattern = regexp.MustCompile(`Error\(Contract, #(\d+)\)`)

// ContractCodeName returns the symbolic name of a contract error number.
func ContractCodeName(code uint32) string {
	if name, ok := contractCodeNames[code]; ok {
		return name
	}

	return "Unknown"
}

// ContractCode extracts the contract error number reported anywhere in err:
// a ContractError's Code, the message of any error in the chain, or a raw
// simulation result.
func ContractCode(err error) (uint32, bool) {
	var contractErr *ContractError
	if errors.As(err, &contractErr) && contractErr.Code != 0 {
		return contractErr.Code, true
	}

	var simErr *SimulationError
	if errors.As(err, &simErr) {
		if code, ok := parseContractCode(string(simErr.Result)); ok {
			return code, true
		}
	}

	if err == nil {
		return 0, false
	}

	return parseContractCode(err.Error())
}

func parseContractCode(s string) (uint32, bool) {
	m := contractCodePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	code, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(code), true
}
