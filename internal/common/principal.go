package common

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID validates a path or body identifier before it reaches a store.
func ParseID(raw, field string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, InvalidArgument(field + " is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, InvalidArgument("invalid " + field)
	}
	return id, nil
}

// RequireActor rejects calls made without a resolved principal.
func RequireActor(actorID primitive.ObjectID) error {
	if actorID.IsZero() {
		return Unauthenticated("login required")
	}
	return nil
}

// Principal is the authenticated caller resolved by AuthMiddleware.
type Principal struct {
	UserID   primitive.ObjectID
	Username string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext is only read by transport code; services take the
// actor id as an explicit argument.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && !p.UserID.IsZero()
}
