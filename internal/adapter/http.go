package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
)

type httpImageProber struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPImageProber constructs a resty-backed [ImageProber]. Every probe is
// bounded by adapterCfg.ImageCheckTimeout, falling back to
// [config.DefaultImageCheckTimeout] when unset.
func NewHTTPImageProber(adapterCfg config.Adapter, logger *logger.Logger) ImageProber {
	timeout := adapterCfg.ImageCheckTimeout
	if timeout <= 0 {
		timeout = config.DefaultImageCheckTimeout
	}

	return &httpImageProber{client: utils.NewHTTPClient(timeout), logger: logger}
}

func normalizeImageURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyImageURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedImageURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrMalformedImageURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrMalformedImageURL)
	}

	return u.String(), nil
}

// Probe implements [ImageProber]. The body is never read.
func (p *httpImageProber) Probe(ctx context.Context, rawURL string) (ProbeResult, error) {
	log := logger.FromContext(ctx)

	target, err := normalizeImageURL(rawURL)
	if err != nil {
		return ProbeResult{}, err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(target)
	if err != nil {
		log.Debug().Err(err).Str("func", "*httpImageProber.Probe").Str("url", target).Msg("image probe failed")
		return ProbeResult{}, mapTransportError(err)
	}
	if body := resp.RawBody(); body != nil {
		body.Close()
	}

	result := ProbeResult{
		URL:         target,
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
	}
	log.Debug().Str("func", "*httpImageProber.Probe").Str("url", target).Int("status", result.StatusCode).Msg("image probed")

	return result, nil
}
