package inquiry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"bigvalue-web/internal/domain/models"
	req "bigvalue-web/internal/lib/api/request"
	resp "bigvalue-web/internal/lib/api/response"
	"bigvalue-web/internal/lib/logger/sl"
	"bigvalue-web/internal/service/inquiry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Submit(ctx context.Context, inq models.Inquiry) (id string, err error)
}

type Inquiry struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Inquiry {
	return &Inquiry{
		log:     log,
		service: service,
	}
}

func (i *Inquiry) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/", i.submit)
	}
}

func (i *Inquiry) submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.inquiry.submit"

	log := i.log.With(slog.String("op", op))

	var body req.Inquiry
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		log.Error("failed to decode request", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid request"))
		return
	}

	inq := models.Inquiry{
		Name:               body.Name,
		Email:              body.Email,
		Mobile:             body.Mobile,
		Affiliation:        body.Affiliation,
		Content:            body.Content,
		AgreePrivacyPolicy: body.AgreePrivacyPolicy,
	}

	// A bad form never reaches the service.
	if err := inquiry.Validate(inq); err != nil {
		log.Info("invalid inquiry", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("필수 항목을 입력해주세요."))
		return
	}

	id, err := i.service.Submit(r.Context(), inq)
	if err != nil {
		if errors.Is(err, inquiry.ErrInvalidInquiry) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Err("필수 항목을 입력해주세요."))
			return
		}

		log.Error("failed to submit inquiry", sl.Error(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, resp.Response{
			Status: resp.StatusError,
			Error:  "문의 전송에 실패했습니다. 잠시 후 다시 시도해주세요.",
			ID:     id,
		})
		return
	}

	render.JSON(w, r, resp.Response{
		Status: resp.StatusOk,
		ID:     id,
	})
}
