// Package mailer delivers out-of-band notifications to users. The reset
// flow depends on it only through the Mailer interface.
package mailer

import "context"

// Mailer sends account mail. Implementations may be slow and are treated as
// fallible; retry policy, if any, lives inside the implementation.
type Mailer interface {
	// SendPasswordReset delivers the raw reset token to the address.
	SendPasswordReset(ctx context.Context, email, name, token string) error

	// SendWelcome greets a freshly registered user. Failures are advisory.
	SendWelcome(ctx context.Context, email, name string) error
}
