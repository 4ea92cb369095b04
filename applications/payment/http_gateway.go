package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/verifiedboiy/fanmeetzone/logger"
)

// HTTPGateway charges through a provider's REST endpoint. One blocking call
// per charge; no retries beyond what the provider does itself.
type HTTPGateway struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewHTTPGateway(baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type chargeResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Declined bool   `json:"declined"`
	Reason   string `json:"reason"`
}

func (g *HTTPGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	if strings.TrimSpace(req.Token) == "" {
		return nil, ErrMissingToken
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gateway response unreadable: %w", err)
	}

	if resp.StatusCode == http.StatusPaymentRequired || out.Declined {
		reason := out.Reason
		if reason == "" {
			reason = "declined by provider"
		}
		logger.Log.Warn(fmt.Sprintf("[gateway] Charge declined for %s: %s", req.Reference, reason))
		return nil, &DeclineError{Reason: reason}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, fmt.Errorf("gateway response missing charge id")
	}

	logger.Log.Info(fmt.Sprintf("[gateway] Charge %s succeeded for %s (%d %s).", out.ID, req.Reference, req.AmountCents, req.Currency))
	return &Receipt{ProviderRef: out.ID}, nil
}
