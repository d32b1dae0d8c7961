package service

import "errors"

// Sentinel errors for service layer
var (
	ErrNotConfigured      = errors.New("service not configured")
	ErrVerificationFailed = errors.New("recaptcha verification failed")
)
