package handlers_test

import (
	"net/http"
	"testing"

	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactPayload() map[string]any {
	return map[string]any{
		"name":    "Jane Wanjiku",
		"email":   "jane@example.com",
		"phone":   "+254712345678",
		"subject": "Soil advice",
		"message": "My maize leaves are yellowing.",
	}
}

func TestContactSubmitStoresAndRelays(t *testing.T) {
	router, st, rec := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/contact", contactPayload(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully")

	message := st.FindOne("contactMessages", func(d store.Document) bool { return d["email"] == "jane@example.com" })
	require.NotNil(t, message)
	assert.Equal(t, "unread", message["status"])

	relays := rec.byTemplate(notify.TemplateContactRelay)
	require.Len(t, relays, 1)
	assert.Equal(t, "admin@aaronagronomy.com", relays[0].Recipient)
	assert.Equal(t, "Soil advice", relays[0].Data["subject"])
}

func TestContactSubmitMissingFields(t *testing.T) {
	router, st, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/contact", map[string]any{"name": "Jane"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name, email, subject and message are required")
	assert.Equal(t, 0, st.Count("contactMessages"))
}

func TestListContactMessages(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/contact", contactPayload(), "")
	require.Equal(t, http.StatusOK, w.Code)

	token := staffToken(t, "3", "admin", "System Administrator")
	w = doJSON(router, http.MethodGet, "/api/contact/messages", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["messages"].([]any), 1)
	assert.Equal(t, 1.0, body["total"])

	w = doJSON(router, http.MethodGet, "/api/contact/messages?status=read", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["messages"])
}

func TestSubscribe(t *testing.T) {
	router, st, rec := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/subscribe", map[string]any{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you for subscribing to our newsletter!")
	assert.Equal(t, 1, st.Count("newsletterSubscribers"))

	welcomes := rec.byTemplate(notify.TemplateNewsletterWelcome)
	require.Len(t, welcomes, 1)
	assert.Equal(t, "jane@example.com", welcomes[0].Recipient)
}

func TestSubscribeTwiceKeepsOneRecord(t *testing.T) {
	router, st, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/subscribe", map[string]any{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/subscribe", map[string]any{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You are already subscribed to our newsletter!")
	assert.Equal(t, 1, st.Count("newsletterSubscribers"))
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	router, st, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/subscribe", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email address is required")

	w = doJSON(router, http.MethodPost, "/api/subscribe", map[string]any{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid email address")

	assert.Equal(t, 0, st.Count("newsletterSubscribers"))
}
