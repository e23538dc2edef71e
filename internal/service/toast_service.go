package service

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 2 * time.Second

// Toast is a transient user notification.
type Toast struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ToastService emits short-lived notifications. Each toast schedules its own
// dismissal; toasts are independent of each other and of note state.
type ToastService struct {
	emitter  EventEmitter
	duration time.Duration
	nextID   atomic.Int64
}

// NewToastService creates a ToastService. A non-positive duration falls back
// to DefaultToastDuration.
func NewToastService(emitter EventEmitter, duration time.Duration) *ToastService {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &ToastService{emitter: emitter, duration: duration}
}

// Push shows a toast and schedules its removal. Identical messages are not
// deduplicated; several toasts may be visible at once.
func (s *ToastService) Push(ctx context.Context, message string) int64 {
	id := s.nextID.Add(1)
	s.emitter.Emit(ctx, "toast:show", Toast{ID: id, Message: message})
	time.AfterFunc(s.duration, func() {
		s.emitter.Emit(ctx, "toast:dismiss", map[string]int64{"id": id})
	})
	return id
}
