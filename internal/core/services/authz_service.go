package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/middleware"
)

// authorizationService answers capability checks from the acting user's
// role. The actor is always explicit; nothing here reads an ambient
// current user.
type authorizationService struct {
	userRepo portsrepo.UserReader
}

// NewAuthorizationService creates a new authorization service.
func NewAuthorizationService(userRepo portsrepo.UserReader) portssvc.AuthorizationSvcFacade {
	return &authorizationService{userRepo: userRepo}
}

var _ portssvc.AuthorizationSvcFacade = (*authorizationService)(nil)

// Authorize returns nil when the actor's role grants the capability,
// apperrors.ErrForbidden when it does not, and apperrors.ErrNotFound for
// an unknown actor.
func (s *authorizationService) Authorize(ctx context.Context, actorID string, capability domain.Capability) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load actor for authorization", slog.String("error", err.Error()), slog.String("actor_id", actorID))
		}
		return err
	}

	if !user.Role.HasCapability(capability) {
		logger.Warn("Capability check failed",
			slog.String("actor_id", actorID),
			slog.String("role", string(user.Role)),
			slog.String("capability", string(capability)),
		)
		return fmt.Errorf("%w: role %s lacks %s", apperrors.ErrForbidden, user.Role, capability)
	}

	return nil
}
