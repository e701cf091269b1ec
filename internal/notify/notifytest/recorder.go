// Package notifytest provides an in-memory Notifier for tests.
package notifytest

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
)

type Sent struct {
	Notice notification.Notice
	Role   *user.Role
}

// Recorder keeps every notice it is given, in order.
type Recorder struct {
	mu   sync.Mutex
	sent []Sent
}

var _ notification.Notifier = (*Recorder)(nil)

func (r *Recorder) Notify(n notification.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Notice: n})
}

func (r *Recorder) NotifyRole(_ context.Context, role user.Role, n notification.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Notice: n, Role: &role})
}

func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}
