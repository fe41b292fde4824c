package response

import "bigvalue-web/internal/domain/models"

const (
	StatusOk    = "OK"
	StatusError = "Error"
)

type Response struct {
	Status    string           `json:"status"`
	Error     string           `json:"error,omitempty"`
	Token     string           `json:"token,omitempty"`
	ID        string           `json:"id,omitempty"`
	Inquiries []models.Inquiry `json:"inquiries,omitempty"`
}

func OK() Response {
	return Response{
		Status: StatusOk,
	}
}

func Err(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}
