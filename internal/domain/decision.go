package domain

// Verdict is the binary outcome of a gate evaluation.
type Verdict string

const (
	VerdictAllow Verdict = "allow"
	VerdictDeny  Verdict = "deny"
)

// Process exit codes understood by the hook host.
const (
	ExitAllow   = 0
	ExitFailure = 1
	ExitDeny    = 2
)

// Decision is the result of checking one file path against a gate's rules.
type Decision struct {
	Verdict     Verdict
	Reason      string
	MatchedRule string
	// Warnings are emitted on stderr even when the write is allowed.
	Warnings []string
}

// Allow returns a decision that lets the write proceed.
func Allow() Decision {
	return Decision{Verdict: VerdictAllow}
}

// Deny returns a blocking decision attributed to rule.
func Deny(rule, reason string) Decision {
	return Decision{Verdict: VerdictDeny, Reason: reason, MatchedRule: rule}
}

// Allowed reports whether the decision permits the write.
func (d Decision) Allowed() bool {
	return d.Verdict != VerdictDeny
}

// ExitCode maps the decision onto the hook exit contract.
func (d Decision) ExitCode() int {
	if d.Allowed() {
		return ExitAllow
	}
	return ExitDeny
}
