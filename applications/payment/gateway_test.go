package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockGatewayApproves(t *testing.T) {
	r, err := MockGateway{}.Charge(context.Background(), ChargeRequest{
		AmountCents: 120000,
		Currency:    "usd",
		Token:       "tok_visa",
		Reference:   "TICKET001",
	})
	require.NoError(t, err)
	require.NotEmpty(t, r.ProviderRef)
}

func TestMockGatewayDeclines(t *testing.T) {
	_, err := MockGateway{}.Charge(context.Background(), ChargeRequest{Token: "tok_declined"})
	var decline *DeclineError
	require.ErrorAs(t, err, &decline)
	require.Contains(t, decline.Error(), "declined")
}

func TestMockGatewayMissingToken(t *testing.T) {
	_, err := MockGateway{}.Charge(context.Background(), ChargeRequest{})
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestHTTPGatewayChargeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/charges", r.URL.Path)
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req ChargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 120000, req.AmountCents)
		require.Equal(t, "TICKET001", req.Reference)

		_ = json.NewEncoder(w).Encode(chargeResponse{ID: "ch_123", Status: "succeeded"})
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "sk_test")
	r, err := g.Charge(context.Background(), ChargeRequest{
		AmountCents: 120000,
		Currency:    "usd",
		Token:       "tok_visa",
		Reference:   "TICKET001",
	})
	require.NoError(t, err)
	require.Equal(t, "ch_123", r.ProviderRef)
}

func TestHTTPGatewayDecline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(chargeResponse{Declined: true, Reason: "insufficient funds"})
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "sk_test")
	_, err := g.Charge(context.Background(), ChargeRequest{Token: "tok_bad"})
	var decline *DeclineError
	require.ErrorAs(t, err, &decline)
	require.Equal(t, "insufficient funds", decline.Reason)
}

func TestHTTPGatewayServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(chargeResponse{})
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "sk_test")
	_, err := g.Charge(context.Background(), ChargeRequest{Token: "tok_visa"})
	require.Error(t, err)
	var decline *DeclineError
	require.False(t, errors.As(err, &decline), "a 500 is not a structured decline")
}

func TestHTTPGatewayMissingToken(t *testing.T) {
	g := NewHTTPGateway("http://unused", "sk_test")
	_, err := g.Charge(context.Background(), ChargeRequest{})
	require.ErrorIs(t, err, ErrMissingToken)
}
