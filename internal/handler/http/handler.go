package http

import (
	"time"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer protects flash cookies; sessions are signed JWTs.
	signer   *utils.Signer
	traceIDs *utils.UUIDGenerator

	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		signer:         utils.NewSigner(cfg.App.SessionSignKey),
		traceIDs:       utils.NewUUIDGenerator(),
		secureCookies:  cfg.Server.SecureCookies,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
