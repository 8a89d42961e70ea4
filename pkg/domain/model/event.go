package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductCreated struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Category  string
}

func (e ProductCreated) Type() string {
	return "ProductCreated"
}

type ProductUpdated struct {
	ProductID uuid.UUID
	OldName   string
	NewName   string
	OldPrice  decimal.Decimal
	NewPrice  decimal.Decimal
}

func (e ProductUpdated) Type() string {
	return "ProductUpdated"
}

type ProductDeleted struct {
	ProductID uuid.UUID
}

func (e ProductDeleted) Type() string {
	return "ProductDeleted"
}

type RequestSubmitted struct {
	RequestID   uuid.UUID
	UserID      uuid.UUID
	ProductName string
}

func (e RequestSubmitted) Type() string {
	return "RequestSubmitted"
}

type RequestReviewed struct {
	RequestID  uuid.UUID
	Status     RequestStatus
	ReviewedBy string
}

func (e RequestReviewed) Type() string {
	return "RequestReviewed"
}

type OrderPlaced struct {
	OrderID   uuid.UUID
	UserID    uuid.UUID
	Total     decimal.Decimal
	ItemCount int
}

func (e OrderPlaced) Type() string {
	return "OrderPlaced"
}

type UserLoggedIn struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (e UserLoggedIn) Type() string {
	return "UserLoggedIn"
}

type UserLoggedOut struct {
	UserID uuid.UUID
}

func (e UserLoggedOut) Type() string {
	return "UserLoggedOut"
}
