package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffissimo/config"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/infra/catalog"
	logs "coffissimo/internal/infra/log"
	"coffissimo/internal/infra/payment"
	"coffissimo/internal/infra/persistence"
	"coffissimo/internal/infra/qrcode"
	"coffissimo/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(domainerrors.ExitCodeInvalid)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

// run starts the application graph, which hydrates the store, executes one command and
// flushes the store on the way out. The return value is the process exit code.
func run(ctx context.Context, args []string) int {
	var (
		cli    commandLine
		logger *slog.Logger
	)

	app := fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(impl.RegisterOrderStoreLifecycle),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		fx.Populate(&cli.store, &cli.storefront, &cli.checkout, &logger),
	)

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start: %v\n", err)

		return domainerrors.ExitCodeInternal
	}

	cli.out = os.Stdout
	cmdErr := cli.dispatch(ctx, args)

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop application", slog.Any("error", err))
	}

	if cmdErr == nil {
		return 0
	}

	info, code := domainerrors.ToErrorInfo(cmdErr)
	logger.Debug("Command failed", slog.String("code", info.Code), slog.Any("error", cmdErr))
	if info.Details != nil {
		fmt.Fprintf(os.Stderr, "Error: %s (%v)\n", info.Message, info.Details)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", info.Message)
	}

	return code
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			catalog.New,
		),
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		qrcode.NewQRCodeService,
		payment.NewSimulatedPayment,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewOrderStoreService,
		impl.NewStorefrontService,
		impl.NewCheckoutService,
	)
}
