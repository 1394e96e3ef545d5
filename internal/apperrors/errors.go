package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the actor lacks the capability required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid authentication credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrConflict indicates the resource is in a state that conflicts with the requested action.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a non-positive or malformed monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientBalance indicates a consumption exceeding the remaining deposit balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrMissingJustification indicates a balance adjustment submitted without a note.
var ErrMissingJustification = errors.New("adjustment requires a justification note")

// ErrAlreadyClosed indicates an operation on a deposit that is already closed.
var ErrAlreadyClosed = errors.New("deposit already closed")

// ErrInvalidStateTransition indicates a workflow action not allowed from the document's current status.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrMissingAccountMapping indicates journal posting could not resolve a required chart of account.
var ErrMissingAccountMapping = errors.New("missing chart of account mapping")

// ErrQuantityExceedsAvailable indicates a quantity write beyond the inspectable/available total.
var ErrQuantityExceedsAvailable = errors.New("quantity exceeds available")
