package game

import "fmt"

// ErrorKind groups rule errors per the recoverability taxonomy. Every kind is
// recoverable: a failed command leaves the combat state untouched.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindResourceExhausted
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindResourceExhausted:
		return "resource exhausted"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Code is the machine-readable reason a command was rejected.
type Code int

const (
	CodeNone Code = iota
	CodeWrongPhase
	CodeCardNotFound
	CodeSlotNotFound
	CodeDieNotFound
	CodeSlotOccupied
	CodeConditionNotMet
	CodeCardDestroyed
	CodeSlotLocked
	CodeAlreadyActivated
	CodeNotEnoughCharge
	CodeInvalidTarget
	CodeSelectionIncomplete
	CodeNoPendingAbility
	CodeScavengeLimit
)

func (c Code) String() string {
	switch c {
	case CodeWrongPhase:
		return "WrongPhase"
	case CodeCardNotFound:
		return "CardNotFound"
	case CodeSlotNotFound:
		return "SlotNotFound"
	case CodeDieNotFound:
		return "DieNotFound"
	case CodeSlotOccupied:
		return "SlotOccupied"
	case CodeConditionNotMet:
		return "ConditionNotMet"
	case CodeCardDestroyed:
		return "CardDestroyed"
	case CodeSlotLocked:
		return "SlotLocked"
	case CodeAlreadyActivated:
		return "AlreadyActivatedThisTurn"
	case CodeNotEnoughCharge:
		return "NotEnoughCharge"
	case CodeInvalidTarget:
		return "InvalidTarget"
	case CodeSelectionIncomplete:
		return "SelectionIncomplete"
	case CodeNoPendingAbility:
		return "NoPendingAbility"
	case CodeScavengeLimit:
		return "ScavengeLimit"
	default:
		return "Unknown"
	}
}

// RuleError is returned by every rejected command. The Reason text is safe to
// surface verbatim to the UI layer.
type RuleError struct {
	Kind   ErrorKind
	Code   Code
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// Is lets errors.Is match two rule errors by code.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Code == e.Code
}

func validationErr(code Code, format string, args ...any) *RuleError {
	return &RuleError{Kind: KindValidation, Code: code, Reason: fmt.Sprintf(format, args...)}
}

func exhaustedErr(code Code, format string, args ...any) *RuleError {
	return &RuleError{Kind: KindResourceExhausted, Code: code, Reason: fmt.Sprintf(format, args...)}
}

func notFoundErr(code Code, format string, args ...any) *RuleError {
	return &RuleError{Kind: KindNotFound, Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ErrCode extracts the rule error code, or CodeNone for nil/foreign errors.
func ErrCode(err error) Code {
	if re, ok := err.(*RuleError); ok {
		return re.Code
	}
	return CodeNone
}
