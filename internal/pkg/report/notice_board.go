package report

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultNoticeTTL is how long a notice stays visible when no TTL is configured.
const DefaultNoticeTTL = 5 * time.Second

// Notice is a transient message kept for display until it expires.
type Notice struct {
	ID        uuid.UUID
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the notice is past its expiry at now.
func (n Notice) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// NoticeBoard is a Reporter that retains notices until Sweep removes the
// expired ones. It is safe for concurrent use: the sweep job runs on the
// cron goroutine while commands report from the caller's goroutine.
type NoticeBoard struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
	now     func() time.Time
}

func NewNoticeBoard(ttl time.Duration) *NoticeBoard {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &NoticeBoard{ttl: ttl, now: time.Now}
}

func (b *NoticeBoard) Report(message string, severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.notices = append(b.notices, Notice{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(b.ttl),
	})
}

// Notices returns every retained notice, expired or not, oldest first.
func (b *NoticeBoard) Notices() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.notices)
}

// Active returns the notices that have not expired yet.
func (b *NoticeBoard) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	active := make([]Notice, 0, len(b.notices))
	for _, n := range b.notices {
		if !n.Expired(now) {
			active = append(active, n)
		}
	}
	return active
}

// Messages returns the text of every retained notice, oldest first.
func (b *NoticeBoard) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	msgs := make([]string, len(b.notices))
	for i, n := range b.notices {
		msgs[i] = n.Message
	}
	return msgs
}

// Dismiss removes a notice before it expires.
func (b *NoticeBoard) Dismiss(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.notices, func(n Notice) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	b.notices = slices.Delete(b.notices, i, i+1)
	return true
}

// Sweep drops expired notices and returns how many were removed.
func (b *NoticeBoard) Sweep() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	before := len(b.notices)
	b.notices = slices.DeleteFunc(b.notices, func(n Notice) bool { return n.Expired(now) })
	return before - len(b.notices)
}

// Clear drops every notice.
func (b *NoticeBoard) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notices = nil
}
