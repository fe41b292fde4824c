package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bigvalue-web/internal/domain/models"
	"bigvalue-web/internal/lib/logger/sl"
	"bigvalue-web/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrInvalidInquiry  = errors.New("required fields are missing")
	ErrDeliveryFailed  = errors.New("inquiry delivery failed")
	ErrInquiryNotFound = errors.New("inquiry not found")
)

const (
	DefaultRecentLimit = 50

	maxResponseSize = 1 << 20
)

type Storage interface {
	SaveInquiry(ctx context.Context, inq models.Inquiry) error
	UpdateInquiryStatus(ctx context.Context, id, status, errMsg string) error
	Inquiries(ctx context.Context, limit int) ([]models.Inquiry, error)
	Inquiry(ctx context.Context, id string) (models.Inquiry, error)
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	client   *http.Client
	endpoint string
}

func New(log *slog.Logger, storage Storage, client *http.Client, endpoint string) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		client:   client,
		endpoint: endpoint,
	}
}

// payload is the body the inquiry endpoint expects.
type payload struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Mobile             string `json:"mobile"`
	Affiliation        string `json:"affiliation"`
	Content            string `json:"content"`
	AgreePrivacyPolicy bool   `json:"agreePrivacyPolicy"`
}

// Validate checks the fields the form marks as required.
func Validate(inq models.Inquiry) error {
	var missing []string

	if strings.TrimSpace(inq.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(inq.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(inq.Content) == "" {
		missing = append(missing, "content")
	}
	if !inq.AgreePrivacyPolicy {
		missing = append(missing, "agreePrivacyPolicy")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInquiry, strings.Join(missing, ", "))
	}

	return nil
}

// Submit validates the inquiry, records it and forwards it to the inquiry
// endpoint. The returned id is the local receipt.
func (s *Service) Submit(ctx context.Context, inq models.Inquiry) (string, error) {
	const op = "service.inquiry.Submit"

	log := s.log.With(slog.String("op", op))

	if err := Validate(inq); err != nil {
		log.Info("inquiry rejected", sl.Error(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	inq.ID = uuid.NewString()
	inq.Status = models.InquiryStatusPending
	inq.Error = ""
	inq.CreatedAt = &now

	log = log.With(slog.String("inquiry_id", inq.ID))

	// A storage failure does not stop delivery.
	if err := s.storage.SaveInquiry(ctx, inq); err != nil {
		log.Error("failed to record inquiry", sl.Error(err))
	}

	result, err := s.forward(ctx, inq)
	if err != nil {
		log.Error("failed to forward inquiry", sl.Error(err))
		s.setStatus(ctx, log, inq.ID, models.InquiryStatusFailed, err.Error())
		return inq.ID, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("inquiry forwarded", slog.Any("result", result))
	s.setStatus(ctx, log, inq.ID, models.InquiryStatusSent, "")

	return inq.ID, nil
}

// Recent lists the latest recorded inquiries.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.Inquiry, error) {
	const op = "service.inquiry.Recent"

	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	inquiries, err := s.storage.Inquiries(ctx, limit)
	if err != nil {
		s.log.Error("failed to list inquiries", slog.String("op", op), sl.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return inquiries, nil
}

// ByID looks up one recorded inquiry by its receipt id.
func (s *Service) ByID(ctx context.Context, id string) (models.Inquiry, error) {
	const op = "service.inquiry.ByID"

	inq, err := s.storage.Inquiry(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrInquiryNotFound) {
			return models.Inquiry{}, fmt.Errorf("%s: %w", op, ErrInquiryNotFound)
		}
		s.log.Error("failed to get inquiry", slog.String("op", op), slog.String("inquiry_id", id), sl.Error(err))
		return models.Inquiry{}, fmt.Errorf("%s: %w", op, err)
	}

	return inq, nil
}

func (s *Service) setStatus(ctx context.Context, log *slog.Logger, id, status, errMsg string) {
	if err := s.storage.UpdateInquiryStatus(ctx, id, status, errMsg); err != nil {
		log.Error("failed to update inquiry status", slog.String("status", status), sl.Error(err))
	}
}

func (s *Service) forward(ctx context.Context, inq models.Inquiry) (map[string]any, error) {
	body, err := json.Marshal(payload{
		Name:               inq.Name,
		Email:              inq.Email,
		Mobile:             inq.Mobile,
		Affiliation:        inq.Affiliation,
		Content:            inq.Content,
		AgreePrivacyPolicy: inq.AgreePrivacyPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrDeliveryFailed, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	var result map[string]any
	if err := json.Unmarshal(text, &result); err != nil {
		result = map[string]any{"message": string(text)}
	}

	return result, nil
}
