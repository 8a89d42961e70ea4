package service

import (
	"fmt"
	"time"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// RequestDraft carries the fields a customer fills in when asking the store to
// source an item.
type RequestDraft struct {
	UserID      uuid.UUID
	ProductName string
	ProductURL  string
	StoreName   string
	PriceRange  string
	Description string
	Quantity    string
}

func (d RequestDraft) validate() error {
	if d.UserID == uuid.Nil {
		return model.ErrRequestOwnerRequired
	}
	if d.ProductName == "" {
		return model.ErrRequestProductNameRequired
	}
	if d.StoreName == "" {
		return model.ErrRequestStoreNameRequired
	}
	if d.Description == "" {
		return model.ErrRequestDescriptionRequired
	}
	if d.Quantity == "" {
		return model.ErrRequestQuantityRequired
	}
	return nil
}

// Requests manages the item request ledger and its review lifecycle.
//
// The ledger performs no authorization itself; callers gate ReviewRequest to
// privileged identities before invoking it.
type Requests interface {
	SubmitRequest(draft RequestDraft) (*model.ItemRequest, error)
	ReviewRequest(id uuid.UUID, status model.RequestStatus, adminNotes, reviewedBy string) (*model.ItemRequest, error)
	UserRequests(userID uuid.UUID) ([]*model.ItemRequest, error)
	AllRequests() ([]*model.ItemRequest, error)
	Stats() (model.RequestStats, error)
}

func NewRequestService(repo model.RequestRepository, dispatcher EventDispatcher, log logger.Logger) Requests {
	if log == nil {
		log = logger.Default()
	}
	return &requestService{
		repo:       repo,
		dispatcher: dispatcher,
		log:        log,
	}
}

type requestService struct {
	repo       model.RequestRepository
	dispatcher EventDispatcher
	log        logger.Logger
}

func (s *requestService) SubmitRequest(draft RequestDraft) (*model.ItemRequest, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to get next request id: %w", err)
	}

	request := &model.ItemRequest{
		ID:          id,
		UserID:      draft.UserID,
		ProductName: draft.ProductName,
		ProductURL:  draft.ProductURL,
		StoreName:   draft.StoreName,
		PriceRange:  draft.PriceRange,
		Description: draft.Description,
		Quantity:    draft.Quantity,
		Date:        time.Now(),
		Status:      model.StatusPending,
	}

	if err := s.repo.Store(request); err != nil {
		return nil, fmt.Errorf("failed to store item request: %w", err)
	}

	s.dispatch(model.RequestSubmitted{
		RequestID:   request.ID,
		UserID:      request.UserID,
		ProductName: request.ProductName,
	})

	return request, nil
}

// ReviewRequest moves a pending request to Approved or Rejected. Requests that
// have already been reviewed stay as they are.
func (s *requestService) ReviewRequest(id uuid.UUID, status model.RequestStatus, adminNotes, reviewedBy string) (*model.ItemRequest, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, model.ErrInvalidRequestStatus
	}

	request, err := s.repo.Find(id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.StatusPending {
		return nil, model.ErrRequestAlreadyReviewed
	}

	now := time.Now()
	request.Status = status
	request.AdminNotes = adminNotes
	request.ReviewedBy = reviewedBy
	request.ReviewedAt = &now

	if err := s.repo.Store(request); err != nil {
		return nil, fmt.Errorf("failed to store item request: %w", err)
	}

	s.dispatch(model.RequestReviewed{
		RequestID:  request.ID,
		Status:     request.Status,
		ReviewedBy: request.ReviewedBy,
	})

	return request, nil
}

func (s *requestService) UserRequests(userID uuid.UUID) ([]*model.ItemRequest, error) {
	return s.repo.ListByUser(userID)
}

func (s *requestService) AllRequests() ([]*model.ItemRequest, error) {
	return s.repo.ListAll()
}

// Stats recomputes the counters with a full scan; the ledger stays small
// enough that incremental counters are not worth their complexity.
func (s *requestService) Stats() (model.RequestStats, error) {
	requests, err := s.repo.ListAll()
	if err != nil {
		return model.RequestStats{}, fmt.Errorf("failed to list item requests: %w", err)
	}

	stats := model.RequestStats{Total: len(requests)}
	for _, request := range requests {
		switch request.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
		case model.StatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

func (s *requestService) dispatch(event Event) {
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.log.Warn("failed to dispatch event", "event", event.Type(), "error", err)
	}
}
