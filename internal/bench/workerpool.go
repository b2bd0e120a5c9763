package bench

import (
	"runtime/debug"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrWorkerPoolStopped is returned if a task is submitted to a WorkerPool that was already shut down.
var ErrWorkerPoolStopped = ierrors.New("worker pool stopped")

// WorkerPool is a blocking goroutine pool with a fixed amount of workers that converts panics of its tasks into
// errors.
type WorkerPool struct {
	pool    *ants.Pool
	stopped *atomic.Bool
	tasksWg sync.WaitGroup

	errMutex sync.Mutex
	errs     []error
}

// NewWorkerPool creates a WorkerPool with the given amount of workers.
func NewWorkerPool(workerCount int) (*WorkerPool, error) {
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to create pool with %d workers", workerCount)
	}

	return &WorkerPool{
		pool:    pool,
		stopped: atomic.NewBool(false),
	}, nil
}

// Submit submits a task to this pool. It blocks until a worker is available.
func (w *WorkerPool) Submit(task func()) error {
	if w.stopped.Load() {
		return ErrWorkerPoolStopped
	}

	w.tasksWg.Add(1)

	if err := w.pool.Submit(func() {
		defer w.tasksWg.Done()
		defer func() {
			if r := recover(); r != nil {
				w.recordErr(ierrors.Errorf("recovered from panic in WorkerPool: %s\n%s", r, debug.Stack()))
			}
		}()

		task()
	}); err != nil {
		w.tasksWg.Done()

		return ierrors.Wrap(err, "failed to submit task")
	}

	return nil
}

// Workers returns the amount of workers of this pool.
func (w *WorkerPool) Workers() int {
	return w.pool.Cap()
}

// Wait blocks until all submitted tasks are done and returns the errors of the tasks that panicked.
func (w *WorkerPool) Wait() error {
	w.tasksWg.Wait()

	w.errMutex.Lock()
	defer w.errMutex.Unlock()

	return ierrors.Join(w.errs...)
}

// Shutdown waits for the submitted tasks and releases the workers.
func (w *WorkerPool) Shutdown() {
	if !w.stopped.CompareAndSwap(false, true) {
		return
	}

	w.tasksWg.Wait()
	w.pool.Release()
}

func (w *WorkerPool) recordErr(err error) {
	w.errMutex.Lock()
	defer w.errMutex.Unlock()

	w.errs = append(w.errs, err)
}
