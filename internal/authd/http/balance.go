package http

import (
	"net/http"

	"github.com/harborbank/authd/internal/authd/service"
	"github.com/harborbank/authd/pkg/authsdk"
	"github.com/harborbank/authd/pkg/httpx"
	"github.com/harborbank/authd/pkg/slogx"
)

// BalanceHandler serves GET /v1/account/balance, the protected resource.
// It requires read_balance scope; the user id comes exclusively from the
// consent claims the scope guard bound into the context.
type BalanceHandler struct {
	UserService *service.UserService
}

func (h *BalanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidOrExpiredToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load account holder", "user_id", userID, "err", err)
		authsdk.ErrUserNotFound.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.BalanceResponse{
		AccountNumber: user.AccountNumber,
		Balance:       user.Balance,
	})
}
