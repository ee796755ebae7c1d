package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID      ctxKey = "user_id"
	CtxKeyAccessToken ctxKey = "access_token"
)

// UserIDFromContext returns the authenticated subject id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// AccessTokenFromContext returns the raw bearer token the caller presented.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyAccessToken).(string)
	return v, ok && v != ""
}
