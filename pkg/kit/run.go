package kit

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// RunUntilSignal runs fn and waits for it to return. SIGINT, SIGTERM or ctx
// cancellation end the wait early; fn is then abandoned and nil is returned.
func RunUntilSignal(ctx context.Context, fn func() error, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("session starting")
		errCh <- fn()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		log.Info("shutdown signal", zap.String("signal", sig.String()))
		return nil
	case <-ctx.Done():
		log.Info("session cancelled", zap.Error(ctx.Err()))
		return nil
	case err := <-errCh:
		log.Info("session finished")
		return err
	}
}
