package http_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	handler "proxymarket/internal/adapter/handler/http"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port/mock"
	"proxymarket/internal/core/service"
)

const webhookSecret = "test-webhook-secret"

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookServer(t *testing.T, mockCtrl *gomock.Controller) (*gin.Engine, *mock.MockRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := mock.NewMockRepository(mockCtrl)
	reconciler, err := service.NewReconciler(repo, webhookSecret, zap.NewNop())
	require.NoError(t, err)

	ph, err := handler.NewPaymentHandler(nil, reconciler, nil, zap.NewNop())
	require.NoError(t, err)

	router := gin.New()
	router.POST("/api/payments/webhook/:provider", ph.Webhook)
	return router, repo
}

func postWebhook(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(nethttp.MethodPost,
		"/api/payments/webhook/cryptomus", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestPaymentHandler_Webhook(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	body := []byte(fmt.Sprintf(
		`{"order_id":%q,"status":"paid","amount":"25.00","currency":"USD","uuid":"uuid-1"}`,
		"TXN-20260826-AAAAAAAA"))

	t.Run("Invalid signature answers 401", func(t *testing.T) {
		router, _ := newWebhookServer(t, mockCtrl)

		recorder := postWebhook(router, body, "deadbeef")

		assert.Equal(t, nethttp.StatusUnauthorized, recorder.Code)
	})

	t.Run("Missing signature answers 401", func(t *testing.T) {
		router, _ := newWebhookServer(t, mockCtrl)

		recorder := postWebhook(router, body, "")

		assert.Equal(t, nethttp.StatusUnauthorized, recorder.Code)
	})

	t.Run("Unknown transaction still answers 200", func(t *testing.T) {
		router, repo := newWebhookServer(t, mockCtrl)

		repo.EXPECT().GetTransaction(gomock.Any(), "TXN-20260826-AAAAAAAA").
			Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().GetTransactionByExternalID(gomock.Any(), "uuid-1").
			Return(nil, domain.ErrDataNotFound)

		recorder := postWebhook(router, body, signBody(body))

		assert.Equal(t, nethttp.StatusOK, recorder.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp["status"])
	})

	t.Run("Applied delivery answers 200", func(t *testing.T) {
		router, repo := newWebhookServer(t, mockCtrl)

		txn := &domain.Transaction{
			ID:        "TXN-20260826-AAAAAAAA",
			AccountID: 7,
			Amount:    decimal.MustParse("25.00"),
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
		}
		repo.EXPECT().GetTransaction(gomock.Any(), txn.ID).Return(txn, nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), txn.ID, gomock.Any()).
			Return(&domain.Transaction{
				ID:     txn.ID,
				Type:   domain.TransactionTypeDeposit,
				Status: domain.TransactionStatusCompleted,
			}, nil)

		recorder := postWebhook(router, body, signBody(body))

		assert.Equal(t, nethttp.StatusOK, recorder.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp["status"])
		assert.Equal(t, txn.ID, resp["transaction_id"])
	})

	t.Run("Storage failure answers 200 with error status", func(t *testing.T) {
		router, repo := newWebhookServer(t, mockCtrl)

		repo.EXPECT().GetTransaction(gomock.Any(), "TXN-20260826-AAAAAAAA").
			Return(nil, domain.ErrInternal)

		recorder := postWebhook(router, body, signBody(body))

		assert.Equal(t, nethttp.StatusOK, recorder.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp["status"])
	})
}
