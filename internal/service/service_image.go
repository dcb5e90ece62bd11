package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/adapter"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

type imageService struct {
	prober   adapter.ImageProber
	fallback string

	logger *logger.Logger
}

// NewImageService wires an [ImageService] to prober. The fallback URL comes
// from cfg and defaults to [models.FallbackImageURL].
func NewImageService(prober adapter.ImageProber, cfg config.Adapter, logger *logger.Logger) ImageService {
	fallback := strings.TrimSpace(cfg.FallbackImageURL)
	if fallback == "" {
		fallback = models.FallbackImageURL
	}

	return &imageService{prober: prober, fallback: fallback, logger: logger}
}

func (s *imageService) Resolve(ctx context.Context, candidate string) string {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(candidate) == "" {
		log.Debug().Str("func", "*imageService.Resolve").Msg("no image given, using fallback")
		return s.fallback
	}

	result, err := s.prober.Probe(ctx, candidate)
	switch {
	case err != nil:
		log.Debug().Err(err).Str("func", "*imageService.Resolve").Str("image", candidate).Msg("image probe failed, using fallback")
		return s.fallback
	case result.StatusCode != http.StatusOK:
		log.Debug().Str("func", "*imageService.Resolve").Str("image", candidate).Int("status", result.StatusCode).Msg("image did not answer 200, using fallback")
		return s.fallback
	}

	return candidate
}
