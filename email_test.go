package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendPlanBuildsRequest(t *testing.T) {
	var captured emailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, `{"id": "msg_1"}`)
	}))
	defer srv.Close()

	client := NewResendClient(srv.URL, "key-123", "Garden <plans@example.com>", zap.NewNop())
	pdf := []byte("%PDF-1.4 fake")

	err := client.SendPlan(context.Background(), "alex@example.com", "1 Main St, Novato",
		RegionOakWoodland, DistrictNorthMarin, pdf)
	require.NoError(t, err)

	assert.Equal(t, "Garden <plans@example.com>", captured.From)
	assert.Equal(t, []string{"alex@example.com"}, captured.To)
	assert.Contains(t, captured.Subject, "1 Main St, Novato")
	assert.Contains(t, captured.HTML, "Oak Woodland")
	assert.Contains(t, captured.HTML, "North Marin Water District")

	require.Len(t, captured.Attachments, 1)
	att := captured.Attachments[0]
	assert.Contains(t, att.Filename, "marin-garden-plan-")
	assert.Contains(t, att.Filename, ".pdf")
	assert.Equal(t, "application/pdf", att.Type)
	decoded, err := base64.StdEncoding.DecodeString(att.Content)
	require.NoError(t, err)
	assert.Equal(t, pdf, decoded)
}

func TestSendPlanNoAttachmentWhenPDFMissing(t *testing.T) {
	var captured emailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		fmt.Fprint(w, `{"id": "msg_2"}`)
	}))
	defer srv.Close()

	client := NewResendClient(srv.URL, "k", "plans@example.com", zap.NewNop())
	err := client.SendPlan(context.Background(), "a@b.com", "addr", RegionChaparral, DistrictMarinWater, nil)
	require.NoError(t, err)
	assert.Empty(t, captured.Attachments)
}

func TestSendPlanAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message": "invalid recipient"}`)
	}))
	defer srv.Close()

	client := NewResendClient(srv.URL, "k", "plans@example.com", zap.NewNop())
	err := client.SendPlan(context.Background(), "bad", "addr", RegionChaparral, DistrictMarinWater, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")
}

func TestSendPlanRequiresConfiguredSender(t *testing.T) {
	client := NewResendClient("http://127.0.0.1:0", "k", "", zap.NewNop())
	err := client.SendPlan(context.Background(), "a@b.com", "addr", RegionChaparral, DistrictMarinWater, nil)
	assert.Error(t, err)
}
