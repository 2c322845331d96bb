package logger

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"golang.org/x/sync/semaphore"
)

// PanicError is the failure reported when an action panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// run calls action and converts a panic into a *PanicError. stack is the
// goroutine stack at the point of failure.
func run(action func() error) (stack []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
			stack = debug.Stack()
		}
	}()

	if err = action(); err != nil {
		stack = debug.Stack()
	}
	return stack, err
}

// failureMessage joins the caller's context, the error and the stack.
func failureMessage(msg string, err error, stack []byte) string {
	var b strings.Builder
	if msg != "" {
		b.WriteString(msg)
		b.WriteByte(' ')
	}
	b.WriteString(err.Error())
	if len(stack) > 0 {
		b.WriteByte('\n')
		b.Write(stack)
	}
	return strings.TrimRight(b.String(), "\n")
}

func logException(l Logger, level Level, action func() error, msg string) bool {
	if action == nil {
		return false
	}
	stack, err := run(action)
	if err == nil {
		return false
	}
	if l.Enabled(level) {
		l.Log(level, failureMessage(msg, err, stack))
	}
	return true
}

// logExceptionAsync serializes async actions on sem. The action runs
// without any lock held by l, so l.Log stays available to other callers.
func logExceptionAsync(ctx context.Context, sem *semaphore.Weighted, l Logger, level Level, action func(context.Context) error, msg string) <-chan bool {
	done := make(chan bool, 1)
	if action == nil {
		done <- false
		close(done)
		return done
	}

	go func() {
		defer close(done)

		if err := sem.Acquire(ctx, 1); err != nil {
			if l.Enabled(level) {
				l.Log(level, failureMessage(msg, fmt.Errorf("waiting to run action: %w", err), nil))
			}
			done <- true
			return
		}
		defer sem.Release(1)

		done <- logException(l, level, func() error { return action(ctx) }, msg)
	}()
	return done
}
