package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prasetyowira/qrgen/api"
	"github.com/prasetyowira/qrgen/api/presenter"
	"github.com/prasetyowira/qrgen/config"
	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/prasetyowira/qrgen/infrastructure/qrcode"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	if err := appLogger.Initialize(cfg.IsProduction(), cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer appLogger.Close()

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataPort:        cfg.Port,
			constant.DataEnvironment: cfg.Environment,
		},
	})

	rasterLevel, err := generator.ParseLevel(cfg.RasterLevel)
	if err != nil {
		fatalConfig(err, "QR_RASTER_LEVEL")
	}
	vectorLevel, err := generator.ParseLevel(cfg.VectorLevel)
	if err != nil {
		fatalConfig(err, "QR_VECTOR_LEVEL")
	}

	service := generator.NewService(
		qrcode.NewRasterEncoder(rasterLevel, cfg.RasterModuleSize),
		qrcode.NewVectorEncoder(vectorLevel, cfg.VectorModuleSize),
	)

	pagePresenter, err := presenter.NewPresenter(cfg.PreviewWidth)
	if err != nil {
		appLogger.Fatal("Failed to initialize presenter", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppPresenter,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	handler := api.NewHandler(service, pagePresenter, cfg.MaxRequestBytes)
	router := api.NewRouter(handler)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
		})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerShutdown,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
			})
			return err
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		appLogger.Fatal(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerStart,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}

func fatalConfig(err error, key string) {
	appLogger.Fatal(constant.MsgInvalidConfig, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeAppConfig,
			Message: err.Error(),
			Type:    constant.ErrTypeApp,
		},
		Data: map[string]interface{}{
			"key": key,
		},
	})
}
