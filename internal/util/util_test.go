package util_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-web-server/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "rg.pdf", util.SanitizeFileName("../../etc/rg.pdf"))
	assert.Equal(t, "rg.pdf", util.SanitizeFileName(`C:\docs\rg.pdf`))
	assert.Equal(t, "arquivo", util.SanitizeFileName(""))
	assert.Equal(t, "foto.png", util.SanitizeFileName("<b>foto.png</b>"))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "olá", util.SanitizeText("  <script>alert(1)</script>olá "))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678909", util.OnlyDigits("123.456.789-09"))
	assert.Equal(t, "01310100", util.OnlyDigits("01310-100"))
}

func TestResolveContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", util.ResolveContentType("application/pdf", nil, "x.bin"))
	assert.Equal(t, "image/png", util.ResolveContentType("image/PNG; charset=binary", nil, "x"))

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	assert.Equal(t, "image/png", util.ResolveContentType("", png, "scan"))
	assert.Equal(t, "image/png", util.ResolveContentType("application/octet-stream", png, "scan"))

	assert.Equal(t, "application/pdf", util.ResolveContentType("", nil, "contrato.PDF"))
	assert.Equal(t, "application/octet-stream", util.ResolveContentType("", nil, "unknown"))
}

func TestGenerateUniqueToken(t *testing.T) {
	calls := 0
	token, err := util.GenerateUniqueToken(context.Background(), util.LinkTokenLength, func(ctx context.Context, token string) (bool, error) {
		calls++
		return calls == 1, nil
	})

	require.NoError(t, err)
	assert.Len(t, token, util.LinkTokenLength)
	assert.Equal(t, 2, calls)
}

func TestGenerateUniqueToken_CheckFails(t *testing.T) {
	_, err := util.GenerateUniqueToken(context.Background(), 16, func(ctx context.Context, token string) (bool, error) {
		return false, errors.New("db down")
	})
	assert.Error(t, err)
}

func TestHandleError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	util.HandleError(rec, "link expired or not found", http.StatusGone)

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"link expired or not found"}`, rec.Body.String())
}

func TestWriteJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	util.WriteJSON(rec, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"abc"}}`, rec.Body.String())
}
