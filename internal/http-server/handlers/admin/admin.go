package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bigvalue-web/internal/domain/models"
	req "bigvalue-web/internal/lib/api/request"
	resp "bigvalue-web/internal/lib/api/response"
	"bigvalue-web/internal/lib/jwt"
	"bigvalue-web/internal/lib/logger/sl"
	"bigvalue-web/internal/service/auth"
	"bigvalue-web/internal/service/inquiry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
)

const LimitQueryParam = "limit"

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Auth
type Auth interface {
	Login(userName, password string) (token string, err error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Inquiries
type Inquiries interface {
	Recent(ctx context.Context, limit int) ([]models.Inquiry, error)
	ByID(ctx context.Context, id string) (models.Inquiry, error)
}

type Admin struct {
	log       *slog.Logger
	auth      Auth
	inquiries Inquiries
	secret    string
}

func New(log *slog.Logger, auth Auth, inquiries Inquiries, secret string) *Admin {
	return &Admin{
		log:       log,
		auth:      auth,
		inquiries: inquiries,
		secret:    secret,
	}
}

func (a *Admin) Register() func(r chi.Router) {
	return func(r chi.Router) {
		// Public routes
		r.Post("/login", a.login)

		// Require auth
		r.Group(func(r chi.Router) {
			tokenAuth := jwtauth.New("HS256", []byte(a.secret), nil)
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(jwtauth.Authenticator(tokenAuth))

			r.Get("/inquiries", a.listInquiries)
			r.Get("/inquiries/{id}", a.getInquiry)
		})
	}
}

func (a *Admin) login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.login"

	log := a.log.With(slog.String("op", op))

	var cred req.Credentials
	if err := render.DecodeJSON(r.Body, &cred); err != nil {
		log.Error("failed to decode request", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid request"))
		return
	}

	if cred.UserName == "" {
		log.Info("user name is empty")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid credentials: user name is empty"))
		return
	}

	if cred.Password == "" {
		log.Info("password is empty")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid credentials: password is empty"))
		return
	}

	token, err := a.auth.Login(cred.UserName, cred.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Err("invalid credentials"))
		case errors.Is(err, auth.ErrLoginDisabled):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, resp.Err("admin login is disabled"))
		default:
			log.Error("failed to log in", sl.Error(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Err("internal error"))
		}
		return
	}

	render.JSON(w, r, resp.Response{
		Status: resp.StatusOk,
		Token:  token,
	})
}

func (a *Admin) listInquiries(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.listInquiries"

	log := a.log.With(slog.String("op", op))

	if !a.isAdmin(w, r, log) {
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get(LimitQueryParam))
	if err != nil || limit < 1 {
		limit = 0
	}

	inquiries, err := a.inquiries.Recent(r.Context(), limit)
	if err != nil {
		log.Error("failed to list inquiries", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, resp.Response{
		Status:    resp.StatusOk,
		Inquiries: inquiries,
	})
}

func (a *Admin) getInquiry(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.getInquiry"

	log := a.log.With(slog.String("op", op))

	if !a.isAdmin(w, r, log) {
		return
	}

	id := chi.URLParam(r, "id")

	inq, err := a.inquiries.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, inquiry.ErrInquiryNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Err("inquiry not found"))
			return
		}
		log.Error("failed to get inquiry", slog.String("inquiry_id", id), sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, resp.Response{
		Status:    resp.StatusOk,
		Inquiries: []models.Inquiry{inq},
	})
}

// isAdmin answers 403 unless the verified token carries the admin role.
func (a *Admin) isAdmin(w http.ResponseWriter, r *http.Request, log *slog.Logger) bool {
	if _, err := jwt.CheckClaim(r.Context(), jwt.ClaimRole, jwt.RoleAdmin); err != nil {
		log.Info("token doesn't have admin role", sl.Error(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, resp.Err("not enough rights"))
		return false
	}
	return true
}
