package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Chat commands the advisory bot understands.
const (
	CmdAdvice = "/advice"
	CmdStatus = "/status"
)

// CommandHandler is called with a normalized bot command and returns
// the reply text, or "" when no reply should be sent.
type CommandHandler func(command string) string

// telegramUpdate represents a Telegram update from long polling.
type telegramUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
	} `json:"message"`
}

// ParseCommand normalizes a chat message into a bot command: the first
// field, lower-cased, with any @botname suffix stripped. Plain chatter
// without a leading slash is not a command.
func ParseCommand(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}
	cmd := strings.ToLower(fields[0])
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return cmd, true
}

// StartPolling long-polls the chat and dispatches bot commands to
// handler. Blocks until ctx is cancelled. Consecutive polling failures
// back off exponentially, mirroring the send path's retry discipline.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	// Long-poll requests are held open server-side for up to 30s, so
	// the poll client needs more headroom than the send client. It
	// shares the notifier's proxy-aware transport.
	client := &http.Client{
		Timeout:   35 * time.Second,
		Transport: t.Client.Transport,
	}

	offset := 0
	failures := 0
	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] Telegram polling stopped")
			return
		default:
		}

		updates, err := t.fetchUpdates(ctx, client, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			failures++
			backoff := pollBackoff(failures)
			log.Printf("[WARN] poll updates failed (%d consecutive): %v, retrying in %v", failures, err, backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			continue
		}
		failures = 0

		for _, update := range updates {
			offset = update.UpdateID + 1
			if update.Message == nil {
				continue
			}
			cmd, ok := ParseCommand(update.Message.Text)
			if !ok {
				continue
			}
			log.Printf("[INFO] received command: %s", cmd)
			if reply := handler(cmd); reply != "" {
				if err := t.Send(ctx, reply); err != nil {
					log.Printf("[ERROR] send reply: %v", err)
				}
			}
		}
	}
}

func (t *TelegramNotifier) fetchUpdates(ctx context.Context, client *http.Client, offset int) ([]telegramUpdate, error) {
	endpoint := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=30", t.APIBase, t.BotToken, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build poll request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll updates: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poll updates: status %d, body: %s", resp.StatusCode, string(body))
	}
	var result struct {
		OK     bool             `json:"ok"`
		Result []telegramUpdate `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode poll response: %w", err)
	}
	if !result.OK {
		return nil, fmt.Errorf("poll updates: telegram returned ok=false")
	}
	return result.Result, nil
}

// pollBackoff grows with the consecutive failure count, capped at one
// minute so a long outage doesn't stall command handling indefinitely.
func pollBackoff(consecutive int) time.Duration {
	if consecutive > 6 {
		consecutive = 6
	}
	return time.Duration(1<<uint(consecutive)) * time.Second
}
