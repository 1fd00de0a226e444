package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Service describes a long-running component of the uTraverse server.
type Service interface {
	// Name returns the name of the service.
	Name() string

	// Run executes the service and blocks until the context gets cancelled
	// or an error occurs.
	Run(context.Context) error
}

// Group is a list of Service instances that can execute in parallel.
type Group []Service

// Execute runs all services in the group with a shared context. It blocks
// until every service has returned, either because ctx was cancelled or
// because one of them failed, which cancels the rest. Errors reported by the
// services are accumulated into a single error.
func (g Group) Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	executionCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	var wg sync.WaitGroup
	wg.Add(len(g))
	errChan := make(chan error, len(g))

	for _, s := range g {
		go func(s Service) {
			defer wg.Done()

			if err := s.Run(executionCtx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)

				cancelFn()
			}
		}(s)
	}

	// Services that exit cleanly on their own must not block shutdown, so
	// wait for either cancellation or every service having returned.
	doneChan := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneChan)
	}()

	select {
	case <-executionCtx.Done():
		<-doneChan
	case <-doneChan:
	}

	var err error
	close(errChan)

	for srvErr := range errChan {
		err = multierror.Append(err, srvErr)
	}

	return err
}
