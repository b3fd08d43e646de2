package handler

import (
	"context"

	"recharge-travels-service/internal/domain/entity"
)

type ctxKey int

const (
	userKey ctxKey = iota
	requestIDKey
)

func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userKey).(*entity.User)
	return user
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
