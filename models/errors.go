package models

import "errors"

var (
	// ErrNotFound indicates a lookup by id failed.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart indicates checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrPaymentDeclined indicates the payment gateway refused the charge.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrOrderCreationFailed indicates the order could not be recorded after payment.
	ErrOrderCreationFailed = errors.New("order creation failed")
	// ErrNotAuthorized indicates a non-admin reached an admin operation.
	ErrNotAuthorized = errors.New("admin access required")
	// ErrAuthFailed indicates no account matches the given email.
	ErrAuthFailed = errors.New("no account matches that email")
)
