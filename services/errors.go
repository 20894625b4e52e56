package services

import "errors"

// Sentinel errors for the order/payment core. Controllers map these onto
// HTTP statuses; everything else surfaces as a 500 with the wrapped message.
var (
	// ErrIllegalTransition: the requested order-state change violates the
	// lifecycle preconditions (already claimed, terminal state, unpaid
	// completion, ...). Also returned when a guarded UPDATE affects zero
	// rows — the order moved under a concurrent writer.
	ErrIllegalTransition = errors.New("illegal order transition")

	// ErrPayoutAccountMissing: the claimant has not finished payout
	// onboarding; the split-payment request is refused before Stripe is
	// contacted.
	ErrPayoutAccountMissing = errors.New("deliverer has no payout account")

	// ErrForbidden: caller is not allowed to act on this record.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation: malformed or missing input caught before any calculator
	// or store call.
	ErrValidation = errors.New("validation failed")
)
