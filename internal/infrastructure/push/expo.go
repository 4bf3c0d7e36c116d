// Package push delivers notifications through the Expo push service, the
// channel the mobile app registers its device tokens with.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"igrejaconnect/internal/ports/output"
)

const defaultEndpoint = "https://exp.host/--/api/v2/push/send"

var _ output.PushGateway = (*ExpoGateway)(nil)

type ExpoGateway struct {
	client   *http.Client
	endpoint string
}

func NewExpoGateway() *ExpoGateway {
	return &ExpoGateway{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: defaultEndpoint,
	}
}

// ValidToken checks the Expo token shape ("ExponentPushToken[...]").
func (g *ExpoGateway) ValidToken(token string) bool {
	return strings.HasPrefix(token, "ExponentPushToken[") && strings.HasSuffix(token, "]")
}

type expoMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

func (g *ExpoGateway) Send(ctx context.Context, token, title, body string) error {
	payload, err := json.Marshal(expoMessage{To: token, Title: title, Body: body, Sound: "default"})
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push service respondeu %d", resp.StatusCode)
	}
	return nil
}
