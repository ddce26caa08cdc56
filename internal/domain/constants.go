package domain

import "time"

const (
	DefaultRetryMaxAttempts = 3
	DefaultRetryMultiplier  = 2.0
)

var (
	DefaultRetryInitialDelay = 100 * time.Millisecond
	DefaultRetryMaxDelay     = 30 * time.Second
)
