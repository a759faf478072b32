package stat

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// UpdateContext provides context for update guards.
type UpdateContext struct {
	ID           int64
	RecordExists bool
}

// DeleteContext provides context for delete guards.
type DeleteContext struct {
	ID           int64
	RecordExists bool
	Confirmed    bool
}

// CanUpdate evaluates whether a record can be updated.
// Rules:
// - Record must exist
func CanUpdate(ctx UpdateContext) GuardResult {
	if !ctx.RecordExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("record %d not found", ctx.ID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanDelete evaluates whether a record can be deleted.
// Rules:
// - Record must exist
// - User must have confirmed
func CanDelete(ctx DeleteContext) GuardResult {
	if !ctx.RecordExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("record %d not found", ctx.ID),
		}
	}

	if !ctx.Confirmed {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("delete of record %d not confirmed. Re-run with --yes or answer y at the prompt", ctx.ID),
		}
	}

	return GuardResult{Allowed: true}
}
