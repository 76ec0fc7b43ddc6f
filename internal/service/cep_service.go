package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/compravenda/api/internal/cache"
	"github.com/compravenda/api/internal/config"
	"github.com/compravenda/api/internal/logger"
)

var cepPattern = regexp.MustCompile(`^\d{8}$`)

// UpstreamError propagates a non-200 answer from the postal service.
type UpstreamError struct {
	StatusCode int
}

// Error implements error.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("consulta de CEP falhou com status %d", e.StatusCode)
}

// CepResult is the subset of the ViaCEP answer exposed by the API.
type CepResult struct {
	Cep          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

// CepService proxies postal code lookups to ViaCEP, caching hits.
type CepService struct {
	cfg    *config.CepConfig
	client *http.Client
}

// NewCepService creates the postal lookup service.
func NewCepService(cfg *config.CepConfig) *CepService {
	timeout := 5 * time.Second
	if cfg != nil && cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &CepService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Lookup resolves a postal code. The code accepts an optional dash
// ("01310-100" and "01310100" are the same CEP). ViaCEP answers 200
// with {"erro": true} for well-formed codes that do not exist.
func (s *CepService) Lookup(ctx context.Context, cep string) (*CepResult, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
	if !cepPattern.MatchString(normalized) {
		return nil, ErrInvalidCep
	}

	cacheKey := "cep:" + normalized
	var cached CepResult
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	url := fmt.Sprintf("%s/ws/%s/json/", strings.TrimSuffix(s.baseURL(), "/"), normalized)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		CepResult
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Erro {
		return nil, ErrCepNotFound
	}

	// The cache is an optimization; a failed write must not fail a
	// lookup the upstream already answered.
	result := payload.CepResult
	if err := cache.SetJSON(ctx, cacheKey, result, s.cacheTTL()); err != nil {
		logger.Warnw("cep_cache_write_failed", "cep", normalized, "error", err)
	}
	return &result, nil
}

func (s *CepService) baseURL() string {
	if s.cfg != nil && strings.TrimSpace(s.cfg.BaseURL) != "" {
		return strings.TrimSpace(s.cfg.BaseURL)
	}
	return "https://viacep.com.br"
}

func (s *CepService) cacheTTL() time.Duration {
	if s.cfg != nil && s.cfg.CacheTTLMinutes > 0 {
		return time.Duration(s.cfg.CacheTTLMinutes) * time.Minute
	}
	return 30 * time.Minute
}
