package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
)

const writeTimeout = 5 * time.Second

type job struct {
	notice notification.Notice
	role   *user.Role
}

// Dispatcher writes notices from a single background worker. A full queue
// drops the notice; the triggering request never waits on it.
type Dispatcher struct {
	writer    *Writer
	directory user.Directory
	log       *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan job
	done   chan struct{}
}

var _ notification.Notifier = (*Dispatcher)(nil)

func NewDispatcher(
	writer *Writer,
	directory user.Directory,
	size int,
	log *slog.Logger,
) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		writer:    writer,
		directory: directory,
		log:       log,
		queue:     make(chan job, size),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) Notify(n notification.Notice) {
	d.enqueue(job{notice: n})
}

// NotifyRole sends the notice to every user holding role. Recipients are
// resolved by the worker, not by the caller.
func (d *Dispatcher) NotifyRole(_ context.Context, role user.Role, n notification.Notice) {
	d.enqueue(job{notice: n, role: &role})
}

func (d *Dispatcher) enqueue(j job) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notification dispatcher closed, dropping notice", "user_id", j.notice.UserID)
		return
	}

	select {
	case d.queue <- j:
	default:
		d.log.Warn("notification queue full, dropping notice", "user_id", j.notice.UserID)
	}
}

// Close stops accepting notices and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for j := range d.queue {
		d.handle(j)
	}
}

func (d *Dispatcher) handle(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if j.role == nil {
		d.write(ctx, j.notice)
		return
	}

	ids, err := d.directory.ListUserIDsByRole(ctx, *j.role)
	if err != nil {
		d.log.Error("notification recipients lookup failed", "role", j.role.Name(), "error", err)
		return
	}
	for _, id := range ids {
		n := j.notice
		n.UserID = id
		d.write(ctx, n)
	}
}

func (d *Dispatcher) write(ctx context.Context, n notification.Notice) {
	if _, err := d.writer.Write(ctx, n); err != nil {
		d.log.Error("notification write failed", "user_id", n.UserID, "error", err)
	}
}
