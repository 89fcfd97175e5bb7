package profile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"mini_casino/internal/client"
	"mini_casino/internal/model"
)

const (
	defaultQueueSize    = 64
	defaultFlushTimeout = 3 * time.Second
)

type pushJob struct {
	playerID string
	gameType model.GameType
	score    int
	done     chan model.SaveAck // optional, buffered
}

// outbox pushes scores to the server one at a time in submission order, so a
// round's bet always reaches the server before its win. Enqueueing never blocks:
// past size pending jobs a score is kept local only.
type outbox struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []pushJob
	size    int
	closed  bool
	stopped chan struct{}

	// cancelled when close gives up waiting, aborting the push in flight
	ctx    context.Context
	cancel context.CancelFunc

	flushTimeout time.Duration
	gateway      client.ScoreClient
	logger       *zap.Logger
}

func newOutbox(gateway client.ScoreClient, logger *zap.Logger, size int) *outbox {
	if size <= 0 {
		size = defaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	o := &outbox{
		size:         size,
		stopped:      make(chan struct{}),
		ctx:          ctx,
		cancel:       cancel,
		flushTimeout: defaultFlushTimeout,
		gateway:      gateway,
		logger:       logger,
	}
	o.cond = sync.NewCond(&o.mu)
	go o.run()
	return o
}

// enqueue reports false once the outbox is closed
func (o *outbox) enqueue(job pushJob) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return false
	}
	if len(o.queue) >= o.size {
		o.logger.Warn("save queue full, kept local save",
			zap.String("player", job.playerID),
			zap.Int("score", job.score),
		)
		if job.done != nil {
			job.done <- model.LocalSaveAck()
		}
		return true
	}
	o.queue = append(o.queue, job)
	o.cond.Signal()
	return true
}

func (o *outbox) next() (pushJob, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for len(o.queue) == 0 && !o.closed {
		o.cond.Wait()
	}
	if len(o.queue) == 0 {
		return pushJob{}, false
	}
	job := o.queue[0]
	o.queue[0] = pushJob{}
	o.queue = o.queue[1:]
	return job, true
}

func (o *outbox) run() {
	defer close(o.stopped)
	for {
		job, ok := o.next()
		if !ok {
			return
		}
		ack := o.push(job)
		if job.done != nil {
			job.done <- ack
		}
	}
}

func (o *outbox) push(job pushJob) model.SaveAck {
	if o.gateway == nil || o.ctx.Err() != nil {
		return model.LocalSaveAck()
	}
	ack, err := o.gateway.SaveScore(o.ctx, job.playerID, job.gameType, job.score)
	if err != nil {
		o.logger.Warn("remote save failed, kept local save",
			zap.String("player", job.playerID),
			zap.Int("score", job.score),
			zap.Error(err),
		)
		return model.LocalSaveAck()
	}
	return ack
}

// close stops accepting jobs and waits up to the flush timeout for the queued
// ones. Past it the push in flight is cancelled and the rest stay local.
func (o *outbox) close() {
	o.mu.Lock()
	if !o.closed {
		o.closed = true
		o.cond.Broadcast()
	}
	pending := len(o.queue)
	o.mu.Unlock()

	t := time.NewTimer(o.flushTimeout)
	defer t.Stop()
	select {
	case <-o.stopped:
		o.cancel()
	case <-t.C:
		o.cancel()
		o.logger.Warn("score server did not answer, remaining saves kept local",
			zap.Int("pending", pending),
			zap.Duration("waited", o.flushTimeout),
		)
	}
}
