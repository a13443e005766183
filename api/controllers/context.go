package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/api/middleware"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// requesterID resolves the authenticated user from the request context.
// Routes behind the auth middleware always have one; its absence means
// the route was wired without it.
func requesterID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user identity")
	}
	return id, nil
}

func requesterRole(ctx context.Context) enums.Role {
	return enums.Role(middleware.RoleFromContext(ctx))
}
