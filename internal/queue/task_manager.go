// Package queue runs independent tasks, such as the reconciliations of many
// paths, either sequentially or with a bounded number of concurrent workers.
package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// TaskManager is a simple task manager for delayed function execution. Each
// task produces a result of type [T].
type TaskManager[T any] struct {
	sync.Mutex
	Tasks []func() T

	stopWhen func(T) bool
}

// NewTaskManager returns a pointer to a new [TaskManager].
func NewTaskManager[T any]() *TaskManager[T] {
	return &TaskManager[T]{
		Tasks: []func() T{},
	}
}

// Add adds a new taskedFunc to the [TaskManager].
// Functions with parameters can be added by invoking a parameterized function
// that immediately returns a func() T, capturing any parameters in the closure.
func (t *TaskManager[T]) Add(taskedFunc func() T) {
	t.Lock()
	defer t.Unlock()

	t.Tasks = append(t.Tasks, taskedFunc)
}

// StopWhen sets a predicate that, once it returns true for any result, stops
// the launching of further tasks. Tasks already running are not interrupted.
func (t *TaskManager[T]) StopWhen(predicate func(result T) bool) {
	t.Lock()
	defer t.Unlock()

	t.stopWhen = predicate
}

func (t *TaskManager[T]) shouldStop(result T) bool {
	return t.stopWhen != nil && t.stopWhen(result)
}

// Launch sequentially launches the functions stored in a [TaskManager].
//
// The results are returned in the order the tasks were added, results of
// tasks that were never launched keep their zero value. An error is only
// returned in case of a mid-flight context cancellation.
func (t *TaskManager[T]) Launch(ctx context.Context) ([]T, error) {
	t.Lock()
	defer t.Unlock()

	results := make([]T, len(t.Tasks))

	for i, task := range t.Tasks {
		if ctx.Err() != nil {
			break
		}

		results[i] = task()

		if t.shouldStop(results[i]) {
			break
		}
	}

	if ctx.Err() != nil {
		return results, fmt.Errorf("(queue-tasker) %w", ctx.Err())
	}

	return results, nil
}

// LaunchConcAndWait concurrently launches the functions stored in a [TaskManager].
//
// The results are returned in the order the tasks were added, results of
// tasks that were never launched keep their zero value. An error is only
// returned in case of a mid-flight context cancellation.
//
// It is the responsibility of the taskedFunc to ensure thread-safety for anything happening
// inside the taskedFunc, with the [TaskManager] only guaranteeing thread-safety for itself.
func (t *TaskManager[T]) LaunchConcAndWait(ctx context.Context, maxWorkers int) ([]T, error) {
	t.Lock()
	defer t.Unlock()

	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var wg sync.WaitGroup
	var stopped atomic.Bool

	results := make([]T, len(t.Tasks))
	semaphore := make(chan struct{}, maxWorkers)

	for i, task := range t.Tasks {
		select {
		case <-ctx.Done():
			wg.Wait()

			return results, fmt.Errorf("(queue-tasker-conc) %w", ctx.Err())
		case semaphore <- struct{}{}:
		}

		if stopped.Load() {
			<-semaphore

			break
		}

		wg.Add(1)
		go func(i int, task func() T) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[i] = task()

			if t.shouldStop(results[i]) {
				stopped.Store(true)
			}
		}(i, task)
	}

	wg.Wait()

	if ctx.Err() != nil {
		return results, fmt.Errorf("(queue-tasker-conc) %w", ctx.Err())
	}

	return results, nil
}
