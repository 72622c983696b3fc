package commands

// Diagnostic prefixes the hook host shows to the user.
const (
	PrefixBlockMD      = "[BlockMD]"
	PrefixProtectFiles = "[ProtectFiles]"
)

// Hook diagnostics
const (
	MsgProtectedHint = "If this change is really needed, make it manually."
	MsgDocsHint      = "documentation belongs under one of"
)

// Error messages
const (
	ErrGateUnavailable          = "gate unavailable"
	ErrValidatorUnavailable     = "validator unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
)
