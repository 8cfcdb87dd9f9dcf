package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"remindu/internal/app"
	"remindu/internal/app/deps"
	"remindu/internal/app/services"
	dl "remindu/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("storage", deps.Config.StorageDriver),
		dl.Entry("timezone", deps.Config.Location().String()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, deps.Config.ShutdownTimeout)
	defer cancel()

	// SSE subscribers hold their requests open until the SSE server closes.
	server.RegisterOnShutdown(deps.SseServer.Close)
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Warning(ctx, "HTTP server did not shut down in time.", dl.Entry("err", err))
	}

	deps.Logger.Info(ctx, "HTTP server has shut down.")
	shutDownDeps()
}
