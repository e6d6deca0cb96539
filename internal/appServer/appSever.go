package appServer

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/eventease/config"
	"github.com/ds124wfegd/eventease/internal/database"
	"github.com/ds124wfegd/eventease/internal/notify"
	"github.com/ds124wfegd/eventease/internal/service"
	"github.com/ds124wfegd/eventease/internal/transport"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		ErrorLog:          log.New(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), "", 0),
	}
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = newHTTPServer(cfg, handler)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewHandler wires stores, services and handlers into the router.
func NewHandler(cfg *config.Config, events *service.EventSender) http.Handler {
	// Stores live for the life of the process
	bookingRepo := database.NewBookingRepository()
	contactRepo := database.NewContactRepository()

	bookingService := service.NewBookingService(bookingRepo, events)
	contactService := service.NewContactService(contactRepo, events)
	healthService := service.NewHealthService()

	return transport.InitRoutes(transport.Handlers{
		Booking: transport.NewBookingHandler(bookingService),
		Contact: transport.NewContactHandler(contactService),
		Health:  transport.NewHealthHandler(healthService),
		Static:  transport.NewStaticHandler(cfg.Static.Root, cfg.Static.Index),
	}, cfg.Server.Timeout)
}

func newPublisher(cfg config.NotifyConfig) notify.Publisher {
	publisher, err := notify.New(cfg)
	if err != nil {
		if errors.Is(err, notify.ErrUnknownDriver) {
			logrus.Fatalf("Invalid notify configuration: %v", err)
		}
		logrus.Errorf("Failed to initialize %s publisher: %v. Continuing with log only...", cfg.Driver, err)
		return notify.NewLogPublisher()
	}
	return publisher
}

func NewServer(cfg *config.Config) {

	setupLogger(cfg.Logger, os.Stdout)

	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	publisher := newPublisher(cfg.Notify)
	events := service.NewEventSender(publisher, cfg.Notify.Timeout)

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, NewHandler(cfg, events)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":    cfg.GetServerAddress(),
		"version": cfg.Server.AppVersion,
		"notify":  cfg.Notify.Driver,
	}).Info("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Info("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

	// Pending notifications go out before the broker connection closes
	drainCtx, drainCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer drainCancel()

	if err := events.Drain(drainCtx); err != nil {
		logrus.Warnf("pending notifications dropped on shutdown: %s", err.Error())
	}
	if err := publisher.Close(); err != nil {
		logrus.Errorf("error occured on closing publisher: %s", err.Error())
	}
}
