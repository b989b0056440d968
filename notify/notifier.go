package notify

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ticket-value-alert/utils"
)

// Notifier is the interface any alert delivery backend must satisfy.
type Notifier interface {
	Send(title, body string) error
}

// Pushover delivers notifications through the Pushover message API.
type Pushover struct {
	userKey  string
	apiToken string
	endpoint string
	client   *http.Client
}

// NewPushover creates a Pushover notifier with the given credentials.
func NewPushover(userKey, apiToken string) *Pushover {
	return &Pushover{
		userKey:  userKey,
		apiToken: apiToken,
		endpoint: "https://api.pushover.net/1/messages.json",
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

// Send posts one message. A non-2xx response is an error; the caller handles
// it at the cycle boundary.
func (p *Pushover) Send(title, body string) error {
	form := url.Values{
		"token":   {p.apiToken},
		"user":    {p.userKey},
		"title":   {title},
		"message": {body},
	}

	resp, err := p.client.Post(p.endpoint, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("pushover: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pushover: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier is the fallback used when Pushover credentials are not
// configured: it writes the title and body to the application log.
type LogNotifier struct {
	logger *utils.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *utils.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(title, body string) error {
	n.logger.Info("[notify] %s", title)
	for _, line := range strings.Split(body, "\n") {
		n.logger.Info("[notify]   %s", line)
	}
	return nil
}
