package models

import "time"

const (
	InquiryStatusPending = "pending"
	InquiryStatusSent    = "sent"
	InquiryStatusFailed  = "failed"
)

type Inquiry struct {
	ID                 string     `json:"id,omitempty"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Mobile             string     `json:"mobile"`
	Affiliation        string     `json:"affiliation"`
	Content            string     `json:"content"`
	AgreePrivacyPolicy bool       `json:"agreePrivacyPolicy"`
	Status             string     `json:"status,omitempty"`
	Error              string     `json:"error,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
}
