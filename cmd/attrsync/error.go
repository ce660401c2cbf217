package main

import "errors"

var (
	// ErrReconcileFailed occurs when the reconciliation of at least one path
	// has failed.
	ErrReconcileFailed = errors.New("reconciliation has failed")

	// ErrUsage occurs when the command-line arguments cannot be used.
	ErrUsage = errors.New("invalid usage")
)
