package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/authz"
	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/dto"
	"github.com/annorax/sleek-travel-backend/internal/netutil"
	"github.com/annorax/sleek-travel-backend/internal/service"
	"github.com/annorax/sleek-travel-backend/internal/store"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	CORSOrigins string
}

func NewRouter(cfg Config, users service.UserService, sessions service.SessionService, logins *store.LoginStore) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	if cfg.CORSOrigins != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(SessionContext(sessions))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/auth", func(r chi.Router) {
		// Credential endpoints are the brute-force surface; cap per IP.
		r.Use(httprate.LimitByIP(30, 1*time.Minute))

		r.Post("/register", handleRegister(users))
		r.Post("/login", handleLogin(users))
		r.Post("/logout", handleLogout(users))
		r.Post("/validate-token", handleValidateToken(users))
		r.Post("/resend-email-verification", handleResendEmailVerification(users))
		r.Post("/resend-phone-verification", handleResendPhoneVerification(users))
		r.Post("/verify-email", handleVerifyEmail(users))
		r.Post("/verify-phone", handleVerifyPhone(users))
		r.Post("/send-password-reset-link", handleSendPasswordResetLink(users))
		r.Post("/reset-password", handleResetPassword(users))
	})

	r.Get("/v1/users/me", handleMe())
	r.Post("/v1/logins/list", handleListLogins(logins))

	return r
}

func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed request body."})
		return req, false
	}
	return req, true
}

func handleRegister(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.RegisterUserRequest](w, r)
		if !ok {
			return
		}
		payload, err := users.RegisterUser(r.Context(), req, netutil.ClientIP(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func handleLogin(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.LogInUserRequest](w, r)
		if !ok {
			return
		}
		payload, err := users.LogInUser(r.Context(), req, netutil.ClientIP(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func handleLogout(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := authz.TokenFromContext(r.Context())
		if !ok {
			writeServiceError(w, domain.ErrTokenNotFound)
			return
		}
		if err := users.LogOutUser(r.Context(), token); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleValidateToken(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.ValidateTokenRequest](w, r)
		if !ok {
			return
		}
		payload, err := users.ValidateToken(r.Context(), req.TokenValue)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func handleResendEmailVerification(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.ResendEmailVerificationRequest](w, r)
		if !ok {
			return
		}
		if err := users.ResendEmailVerificationRequest(r.Context(), req.Email); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleResendPhoneVerification(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.ResendPhoneNumberVerificationRequest](w, r)
		if !ok {
			return
		}
		if err := users.ResendPhoneNumberVerificationRequest(r.Context(), req.PhoneNumber); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleVerifyEmail(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.VerifyEmailAddressRequest](w, r)
		if !ok {
			return
		}
		if err := users.VerifyEmailAddress(r.Context(), req.Token); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleVerifyPhone(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.VerifyPhoneNumberRequest](w, r)
		if !ok {
			return
		}
		if err := users.VerifyPhoneNumber(r.Context(), req); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSendPasswordResetLink(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.SendPasswordResetLinkRequest](w, r)
		if !ok {
			return
		}
		if err := users.SendPasswordResetLink(r.Context(), req.EmailOrPhone); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleResetPassword(users service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[dto.ResetPasswordRequest](w, r)
		if !ok {
			return
		}
		if err := users.ResetPassword(r.Context(), req); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := authz.PrincipalFromContext(r.Context())
		if principal == nil {
			writeServiceError(w, domain.ErrUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, dto.NewSafeUser(principal))
	}
}

// handleListLogins serves the login audit trail. Guarded by the same policy
// machinery the API layer applies to resolver invocations: own-data-only
// with admin override, ownership taken from the where filter.
func handleListLogins(logins *store.LoginStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var args authz.Arguments
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed request body."})
			return
		}
		principal := authz.PrincipalFromContext(r.Context())
		pol, ok := authz.Lookup("Login.query")
		if !ok {
			writeServiceError(w, domain.ErrUnauthorized)
			return
		}
		if err := authz.Authorize(principal, pol, args); err != nil {
			writeServiceError(w, err)
			return
		}
		rawID, ok := authz.UserIDFilter(args)
		if !ok {
			// Admins may omit the filter; scope to their own records then.
			rawID = principal.ID.String()
		}
		userID, err := uuid.Parse(rawID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid userId filter."})
			return
		}
		records, err := logins.ListByUser(r.Context(), userID, 100)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}
