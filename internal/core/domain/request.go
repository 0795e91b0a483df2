package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a citizen application.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCompleted RequestStatus = "completed"
)

var ErrRequestNotFound = errors.New("request not found")
var ErrDuplicateRegistration = errors.New("registration number already exists")

// IsValid reports whether s is one of the four known statuses. Any status
// may follow any other; the only constraint is enum membership.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Request is a citizen application submitted against a catalog service.
// RegistrationNo is the caller-facing tracking token, unique across all
// requests and enforced by the store at write time.
type Request struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	UserName       string        `json:"userName" bson:"user_name"`
	UserPhone      string        `json:"userPhone" bson:"user_phone"`
	ServiceName    string        `json:"serviceName" bson:"service_name"`
	ServiceID      string        `json:"serviceId" bson:"service_id"`
	AadharNumber   string        `json:"aadharNumber,omitempty" bson:"aadhar_number,omitempty"`
	Address        string        `json:"address,omitempty" bson:"address,omitempty"`
	RegistrationNo string        `json:"registrationNo" bson:"registration_no"`
	Status         RequestStatus `json:"status" bson:"status"`
	SubmittedAt    time.Time     `json:"submittedAt" bson:"submitted_at"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updated_at"`
}
