package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound            = errors.New("item request not found")
	ErrRequestOwnerRequired       = errors.New("item request owner is required")
	ErrRequestProductNameRequired = errors.New("item request product name is required")
	ErrRequestStoreNameRequired   = errors.New("item request store name is required")
	ErrRequestDescriptionRequired = errors.New("item request description is required")
	ErrRequestQuantityRequired    = errors.New("item request quantity is required")
	ErrInvalidRequestStatus       = errors.New("invalid item request status")
	ErrRequestAlreadyReviewed     = errors.New("item request has already been reviewed")
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending Review"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// ItemRequest is a customer sourcing request. It starts in Pending Review and
// moves exactly once to Approved or Rejected; requests are never deleted.
type ItemRequest struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"userId"`
	ProductName string        `json:"productName"`
	ProductURL  string        `json:"productUrl,omitempty"`
	StoreName   string        `json:"storeName"`
	PriceRange  string        `json:"priceRange,omitempty"`
	Description string        `json:"description"`
	Quantity    string        `json:"quantity"`
	Date        time.Time     `json:"date"`
	Status      RequestStatus `json:"status"`
	AdminNotes  string        `json:"adminNotes,omitempty"`
	ReviewedBy  string        `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty"`
}

// RequestStats are the review-pipeline counters shown on the admin dashboard.
type RequestStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// RequestRepository keeps the ledger newest-first: Store prepends new requests
// and replaces existing ones in place.
type RequestRepository interface {
	NextID() (uuid.UUID, error)
	Store(request *ItemRequest) error
	Find(id uuid.UUID) (*ItemRequest, error)
	ListAll() ([]*ItemRequest, error)
	ListByUser(userID uuid.UUID) ([]*ItemRequest, error)
}
