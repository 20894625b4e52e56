package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StripeClient is a thin client for the two Checkout endpoints this service
// needs. Amounts are minor units (cents); payloads are Stripe's form encoding.
type StripeClient struct {
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		SecretKey: secretKey,
		BaseURL:   "https://api.stripe.com/v1",
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

type SplitSessionIn struct {
	AmountCents        int64
	PlatformFeeCents   int64
	DestinationAccount string
	ProductName        string
	ProductDescription string
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

type SplitSession struct {
	SessionID       string
	PaymentIntentID string
	URL             string
}

type SessionStatus struct {
	PaymentStatus   string // "paid" | "unpaid" | "no_payment_required"
	PaymentIntentID string
}

// CreateSplitSession creates a Checkout session for a destination charge:
// one line item for the full amount, an application fee kept by the platform,
// and the remainder transferred to the destination account.
func (s *StripeClient) CreateSplitSession(ctx context.Context, in SplitSessionIn) (*SplitSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", in.ProductName)
	if in.ProductDescription != "" {
		form.Set("line_items[0][price_data][product_data][description]", in.ProductDescription)
	}
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(in.AmountCents, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("payment_intent_data[application_fee_amount]", strconv.FormatInt(in.PlatformFeeCents, 10))
	form.Set("payment_intent_data[transfer_data][destination]", in.DestinationAccount)
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)
	for k, v := range in.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
		form.Set(fmt.Sprintf("payment_intent_data[metadata][%s]", k), v)
	}

	var out struct {
		ID            string `json:"id"`
		PaymentIntent string `json:"payment_intent"`
		URL           string `json:"url"`
	}
	if err := s.do(ctx, http.MethodPost, "/checkout/sessions", form, &out); err != nil {
		return nil, err
	}
	return &SplitSession{SessionID: out.ID, PaymentIntentID: out.PaymentIntent, URL: out.URL}, nil
}

// RetrieveSession fetches a Checkout session's payment status.
func (s *StripeClient) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	var out struct {
		PaymentStatus string `json:"payment_status"`
		PaymentIntent string `json:"payment_intent"`
	}
	if err := s.do(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &SessionStatus{PaymentStatus: out.PaymentStatus, PaymentIntentID: out.PaymentIntent}, nil
}

func (s *StripeClient) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		// Stripe dedupes retried POSTs by this key.
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	res, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode >= 400 {
		var e struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error.Message != "" {
			return fmt.Errorf("stripe: %s", e.Error.Message)
		}
		return fmt.Errorf("stripe: status %d", res.StatusCode)
	}
	return json.Unmarshal(raw, out)
}
