package output

import "context"

// PushGateway validates device push tokens and delivers notifications.
// All push work is best-effort: callers log failures and move on.
type PushGateway interface {
	ValidToken(token string) bool
	Send(ctx context.Context, token, title, body string) error
}
