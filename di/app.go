package di

import (
	"frontdesk/internal/sweep"
	"frontdesk/transport/http"
)

// App bundles the long-running pieces main has to start.
type App struct {
	HTTP    *http.HTTP
	Sweeper sweep.Runner
}
