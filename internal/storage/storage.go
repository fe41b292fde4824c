package storage

import "errors"

var (
	ErrInquiryExists   = errors.New("inquiry already exists")
	ErrInquiryNotFound = errors.New("inquiry not found")
)
