// Package ratesource fetches exchange rates from an exchangerate-api compatible endpoint.
package ratesource

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxBodyBytes caps the response read; a full rate table is a few KiB.
const maxBodyBytes = 1 << 20

type httpRateSource struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// latestResponse is the body of GET <baseURL><BASE>.
type latestResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewHTTPRateSource builds the rate source from currency.rateSourceUrl. The client
// carries no timeout of its own; callers bound each fetch through ctx.
func NewHTTPRateSource(cfg *config.Config, logger *slog.Logger) service.RateSource {
	return NewHTTPRateSourceWithClient(cfg.Currency.RateSourceURL, http.DefaultClient, logger)
}

// NewHTTPRateSourceWithClient is NewHTTPRateSource with an explicit endpoint and client.
func NewHTTPRateSourceWithClient(baseURL string, client *http.Client, logger *slog.Logger) service.RateSource {
	return &httpRateSource{
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger.With(slog.String("component", "rate_source")),
	}
}

func (s *httpRateSource) FetchRates(ctx context.Context, base entity.CurrencyCode) (entity.RateTable, error) {
	url := s.baseURL + string(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch exchange rates")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("rate source returned non-success status: %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode exchange rates")
	}

	if body.Base != "" && !strings.EqualFold(body.Base, string(base)) {
		return nil, errors.Errorf("rate source answered for base %s, asked for %s", body.Base, base)
	}

	rates := make(entity.RateTable, len(body.Rates))
	for code, rate := range body.Rates {
		if !rate.IsPositive() {
			s.logger.Debug("Skipping non-positive rate", slog.String("currency", code))

			continue
		}
		rates[entity.CurrencyCode(strings.ToUpper(code))] = rate
	}
	if len(rates) == 0 {
		return nil, errors.New("rate source returned no usable rates")
	}

	s.logger.Debug("Exchange rates fetched",
		slog.String("base", string(base)),
		slog.Int("count", len(rates)),
	)

	return rates, nil
}
