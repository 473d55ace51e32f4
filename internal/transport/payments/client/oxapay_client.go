package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
)

const (
	RoutePaymentRequest = "/merchants/request"
	RoutePaymentInquiry = "/merchants/inquiry"
	RoutePayout         = "/api/send"
)

// resultOK код успеха в ответах OxaPay.
const resultOK = 100

// Currency валюта всех платежей.
const Currency = domain.Currency

type PaymentStatus string

const (
	StatusWaiting    PaymentStatus = "Waiting"
	StatusConfirming PaymentStatus = "Confirming"
	StatusPaid       PaymentStatus = "Paid"
	StatusExpired    PaymentStatus = "Expired"
)

// PaymentResponse ответ на запрос адреса под депозит.
type PaymentResponse struct {
	TrackID string
	Address string
}

// InquiryResponse статус депозита по данным платежной системы.
type InquiryResponse struct {
	Status PaymentStatus
	Amount decimal.Decimal
}

// PayoutResponse ответ на запрос выплаты.
type PayoutResponse struct {
	TrackID string
}

// HTTPClient клиент OxaPay. Депозиты авторизуются мерчант-ключом, выплаты - отдельным
// payout-ключом.
type HTTPClient struct {
	baseURL     string
	merchantKey string
	payoutKey   string
	httpClient  *http.Client
}

func New(baseURL, merchantKey, payoutKey string) HTTPClient {
	return HTTPClient{
		baseURL:     baseURL,
		merchantKey: merchantKey,
		payoutKey:   payoutKey,
		httpClient:  http.DefaultClient,
	}
}

type paymentRequestBody struct {
	Merchant string `json:"merchant"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type paymentRequestResponse struct {
	Result  int    `json:"result"`
	Message string `json:"message"`
	TrackID string `json:"trackId"`
	Address string `json:"address"`
}

// RequestPayment запрашивает у платежной системы адрес под депозит на сумму amount.
func (c HTTPClient) RequestPayment(ctx context.Context, amount decimal.Decimal) (*PaymentResponse, error) {
	var resp paymentRequestResponse
	err := c.post(ctx, RoutePaymentRequest, paymentRequestBody{
		Merchant: c.merchantKey,
		Amount:   amount.String(),
		Currency: Currency,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("requesting payment: %w", err)
	}
	if resp.Result != resultOK {
		return nil, NewAPIError(resp.Result, resp.Message)
	}
	return &PaymentResponse{TrackID: resp.TrackID, Address: resp.Address}, nil
}

type paymentInquiryBody struct {
	Merchant string `json:"merchant"`
	TrackID  string `json:"trackId"`
}

type paymentInquiryResponse struct {
	Result  int             `json:"result"`
	Message string          `json:"message"`
	Status  PaymentStatus   `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
}

// InquirePayment возвращает текущий статус депозита по его track id.
func (c HTTPClient) InquirePayment(ctx context.Context, trackID string) (*InquiryResponse, error) {
	var resp paymentInquiryResponse
	err := c.post(ctx, RoutePaymentInquiry, paymentInquiryBody{
		Merchant: c.merchantKey,
		TrackID:  trackID,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("inquiring payment: %w", err)
	}
	if resp.Result != resultOK {
		return nil, NewAPIError(resp.Result, resp.Message)
	}
	return &InquiryResponse{Status: resp.Status, Amount: resp.Amount}, nil
}

type payoutBody struct {
	Key      string `json:"key"`
	Address  string `json:"address"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type payoutResponse struct {
	Result  int    `json:"result"`
	Message string `json:"message"`
	TrackID string `json:"trackId"`
}

// CreatePayout отправляет amount на кошелек address.
func (c HTTPClient) CreatePayout(ctx context.Context, address string, amount decimal.Decimal) (*PayoutResponse, error) {
	var resp payoutResponse
	err := c.post(ctx, RoutePayout, payoutBody{
		Key:      c.payoutKey,
		Address:  address,
		Amount:   amount.String(),
		Currency: Currency,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("creating payout: %w", err)
	}
	if resp.Result != resultOK {
		return nil, NewAPIError(resp.Result, resp.Message)
	}
	return &PayoutResponse{TrackID: resp.TrackID}, nil
}

// post выполняет POST запрос с JSON телом и разбирает JSON ответ в out.
// При ответе сервера со статусом отличным от http.StatusOK возвращает StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) post(ctx context.Context, route string, body any, out any) (err error) {
	payload, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		return fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(payload))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return err
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return err
	}

	if jsonErr := json.Unmarshal(respBody, out); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return err
	}
	return nil
}
