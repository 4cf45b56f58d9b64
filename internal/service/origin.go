package service

import "context"

type originCtxKey struct{}

// ContextWithOrigin attaches the request's origin network address to ctx so
// audit entries recorded deeper in the call chain can attribute themselves.
func ContextWithOrigin(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, originCtxKey{}, addr)
}

func originFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(originCtxKey{}).(string)
	return addr, ok
}
