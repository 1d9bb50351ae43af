// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs Cinematch's long-lived services under suture v4.

	RootSupervisor ("cinematch")
	├── EngineSupervisor ("engine-layer")
	│   └── StatsReporterService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler from the
logging package.

Canceling the context passed to Serve stops every service; the HTTP server
drains in-flight requests within ShutdownTimeout.

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	_ = tree.Serve(ctx)
*/
package supervisor
