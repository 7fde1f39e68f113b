package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"firebase.google.com/go/messaging"

	"menageBack/internal/models"
)

// FCMHandler manages device tokens and sends push notifications. Token
// storage is a single table, so the queries live here rather than in a
// repository.
type FCMHandler struct {
	Client *messaging.Client
	DB     *sql.DB
}

func NewFCMHandler(client *messaging.Client, db *sql.DB) *FCMHandler {
	return &FCMHandler{Client: client, DB: db}
}

// Notify pushes the notification to every device registered for the user.
// It satisfies services.Notifier.
func (h *FCMHandler) Notify(ctx context.Context, n models.Notification) {
	if h.Client == nil {
		return
	}
	tokens, err := h.tokensByUserID(ctx, n.UserID)
	if err != nil {
		log.Printf("Notify: fetching tokens: %v", err)
		return
	}
	for _, token := range tokens {
		if err := h.send(ctx, token, n); err != nil {
			log.Printf("Notify: sending to token %s: %v", token, err)
		}
	}
}

func (h *FCMHandler) send(ctx context.Context, token string, n models.Notification) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"link": n.Link,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: n.Title,
						Body:  n.Body,
					},
					Sound: "default",
				},
			},
		},
	}

	_, err := h.Client.Send(ctx, message)
	return err
}

func (h *FCMHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var token models.DeviceToken
	if err := json.NewDecoder(r.Body).Decode(&token); err != nil || token.Token == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	token.UserID = userID(r)

	_, err := h.DB.ExecContext(r.Context(),
		`INSERT INTO notify_tokens (user_id, token) VALUES (?, ?)`,
		token.UserID, token.Token)
	if err != nil {
		log.Printf("CreateToken error: %v", err)
		http.Error(w, "Failed to save token", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FCMHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	token := getParam(r, "token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}
	if _, err := h.DB.ExecContext(r.Context(),
		`DELETE FROM notify_tokens WHERE token = ?`, token); err != nil {
		http.Error(w, "Failed to delete token", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *FCMHandler) tokensByUserID(ctx context.Context, id int) ([]string, error) {
	rows, err := h.DB.QueryContext(ctx,
		`SELECT token FROM notify_tokens WHERE user_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
