package utils

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-ecommerce-console/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func sampleOrder(t *testing.T) models.Order {
	t.Helper()
	tea, err := models.NewItem("A1B2C3", "C2 Green Tea", decimal.RequireFromString("32.00"))
	require.NoError(t, err)
	juice, err := models.NewItem("X9Y8Z7", "Zesto Juice Drink", decimal.RequireFromString("14.00"))
	require.NoError(t, err)
	return models.NewOrder(4, []models.CartLine{{Item: tea, Quantity: 2}, {Item: juice, Quantity: 1}}, models.Card.Label())
}

func TestJWTRoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("sess-1", RoleShopper, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, RoleShopper, claims.Role)
}

func TestJWTRejectsExpiredAndForeignTokens(t *testing.T) {
	JwtKey = []byte("test-secret")
	expired, err := GenerateJWT("sess-1", RoleShopper, -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired)
	assert.Error(t, err)

	JwtKey = []byte("other-secret")
	foreign, err := GenerateJWT("sess-2", RoleOperator, time.Hour)
	require.NoError(t, err)
	JwtKey = []byte("test-secret")
	_, err = ParseJWT(foreign)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("", "hunter2"))
}

func TestNewLoggerScopesWithoutDuplicateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shop.log")
	logger, err := NewLogger("shop", "warn", path)
	require.NoError(t, err)

	logger.With("component", "checkout").Warn("settlement failed")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(raw)
	assert.Contains(t, line, `"service":"shop"`)
	assert.Contains(t, line, `"component":"checkout"`)
	assert.Equal(t, 1, strings.Count(line, `"component"`))
}

func TestNewLoggerReportsUnusableLogDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewLogger("shop", "warn", filepath.Join(blocker, "shop.log"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
}

type fakeMailer struct {
	from, to, subject, html, text string
	err                           error
}

func (f *fakeMailer) Send(from, to, subject, htmlBody, textBody string) error {
	f.from, f.to, f.subject, f.html, f.text = from, to, subject, htmlBody, textBody
	return f.err
}

func TestEmailServiceRecord(t *testing.T) {
	m := &fakeMailer{}
	es := NewEmailServiceWithMailer(m, "shop@example.com", "ops@example.com", "₱")

	require.NoError(t, es.Record(context.Background(), sampleOrder(t)))
	assert.Equal(t, "shop@example.com", m.from)
	assert.Equal(t, "ops@example.com", m.to)
	assert.Equal(t, "Order Confirmation #4", m.subject)
	assert.Contains(t, m.text, "Total Amount: ₱78.00")
	assert.Contains(t, m.text, "Payment Method: Credit / Debit Card")
}

func TestEmailServiceWrapsMailerError(t *testing.T) {
	cause := errors.New("smtp down")
	es := NewEmailServiceWithMailer(&fakeMailer{err: cause}, "a@b", "c@d", "₱")

	err := es.Record(context.Background(), sampleOrder(t))
	assert.ErrorIs(t, err, cause)
}

func TestNewEmailServiceValidation(t *testing.T) {
	_, err := NewEmailService("postmark", "", "a@b", "c@d", "₱")
	assert.Error(t, err)
	_, err = NewEmailService("pigeon", "token", "a@b", "c@d", "₱")
	assert.Error(t, err)

	es, err := NewEmailService("sendgrid", "token", "a@b", "c@d", "₱")
	require.NoError(t, err)
	assert.NotNil(t, es)
}

func TestOrderDocument(t *testing.T) {
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	doc := OrderDocument(sampleOrder(t), at)

	assert.Equal(t, 4, doc["order_id"])
	assert.Equal(t, "78.00", doc["total_amount"])
	assert.Equal(t, "Credit / Debit Card", doc["payment_method"])
	assert.Equal(t, at, doc["recorded_at"])

	items, ok := doc["items"].(bson.A)
	require.True(t, ok)
	require.Len(t, items, 2)
	first := items[0].(bson.M)
	assert.Equal(t, "A1B2C3", first["product_id"])
	assert.Equal(t, 2, first["quantity"])
	assert.Equal(t, "64.00", first["line_total"])

	_, err := bson.Marshal(doc)
	assert.NoError(t, err)
}
