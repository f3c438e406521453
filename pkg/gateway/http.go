package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/result"
)

const maxResponseBytes = 1 << 20

// HTTP calls a remote calculation service.
type HTTP struct {
	endpoint string
	cfg      config
}

var _ Gateway = (*HTTP)(nil)

// NewHTTP returns a gateway posting to endpoint, which must be an absolute
// http or https URL.
func NewHTTP(endpoint string, options ...Option) (*HTTP, error) {
	if endpoint == "" {
		return nil, errors.New("gateway: endpoint is required")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("gateway: endpoint %q must use http or https", endpoint)
	}

	cfg := newConfig(options)
	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}
	if cfg.requestID == nil {
		cfg.requestID = uuid.NewString
	}
	return &HTTP{endpoint: endpoint, cfg: cfg}, nil
}

// Endpoint returns the configured service URL.
func (g *HTTP) Endpoint() string {
	return g.endpoint
}

// Calculate posts req as JSON and decodes the response envelope.
func (g *HTTP) Calculate(ctx context.Context, req form.Request) (result.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return result.Result{}, Unreachable(fmt.Errorf("encode request: %w", err))
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if g.cfg.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, g.cfg.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return result.Result{}, Unreachable(err)
	}
	requestID := g.cfg.requestID()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	logger := g.cfg.logger.With(
		zap.String("request_id", requestID),
		zap.String("vessel_type", req.VesselType),
		zap.String("sub_type", req.SubType),
	)
	started := time.Now()

	resp, err := g.cfg.client.Do(httpReq)
	if err != nil {
		logger.Warn("calculation request failed", zap.Error(err))
		return result.Result{}, Unreachable(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		logger.Warn("calculation service returned error status", zap.Int("status", resp.StatusCode))
		return result.Result{}, Transport(resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Warn("reading calculation response failed", zap.Error(err))
		return result.Result{}, Unreachable(err)
	}

	out, err := g.decode(data)
	if err != nil {
		var calcErr *CalculationError
		if errors.As(err, &calcErr) && calcErr.Kind == KindRejected {
			logger.Info("calculation rejected", zap.String("message", calcErr.Message))
		} else {
			logger.Warn("decoding calculation response failed", zap.Error(err))
		}
		return result.Result{}, err
	}

	logger.Debug("calculation completed",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("groups", len(out.Groups)),
	)
	return out, nil
}

func (g *HTTP) decode(data []byte) (result.Result, error) {
	if g.cfg.contract != nil {
		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			return result.Result{}, Unreachable(fmt.Errorf("decode response: %w", err))
		}
		if err := g.cfg.contract.ValidateResponse(payload); err != nil {
			return result.Result{}, Unreachable(err)
		}
	}

	var envelope Response
	if err := json.Unmarshal(data, &envelope); err != nil {
		return result.Result{}, Unreachable(fmt.Errorf("decode response: %w", err))
	}
	if envelope.Status != StatusSuccess {
		return result.Result{}, Rejected(envelope.Message)
	}
	if envelope.Results == nil {
		return result.Result{}, nil
	}
	return *envelope.Results, nil
}
