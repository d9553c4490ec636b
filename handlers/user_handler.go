package handlers

import (
	"net/http"

	"github.com/tannerbroberts/planner-api/app"
	"github.com/tannerbroberts/planner-api/middleware"
	"github.com/tannerbroberts/planner-api/utils"
	"go.uber.org/zap"
)

// GetCurrentUserHandler echoes the identity attached by the resolver,
// including which tier produced it.
func GetCurrentUserHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentityFromContext(r.Context())
		if identity == nil {
			// The resolver always attaches an identity; reaching here means
			// the route is wired without it.
			deps.Logger.Error("identity missing from context",
				zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())))
			_ = utils.WriteInternalServerError(w, "Identity not resolved")
			return
		}

		_ = utils.WriteOK(w, identity)
	}
}
