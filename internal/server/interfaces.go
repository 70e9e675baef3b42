package server

import "context"

type Server interface {
	RunServer()

	Shutdown()
}

// BackgroundJobs is started with the server and stopped with it.
type BackgroundJobs interface {
	Run(ctx context.Context)
	Wait()
}
