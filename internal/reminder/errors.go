package reminder

import "errors"

var (
	ErrNoNotifiers      = errors.New("reminder: at least one notifier is required")
	ErrAllNotifiersFail = errors.New("reminder: every notifier failed")
)
