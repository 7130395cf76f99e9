package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/stan.go"
)

type NATSClient struct {
	conn stan.Conn
}

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

// NewNATSClient подключается к NATS Streaming. Пустой URL означает, что
// публикация доменных событий выключена.
func NewNATSClient(cfg Config) (*NATSClient, error) {
	if cfg.URL == "" {
		return &NATSClient{}, nil
	}

	conn, err := stan.Connect(cfg.ClusterID, cfg.ClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS Streaming: %w", err)
	}

	slog.Info("Connected to NATS Streaming",
		"url", cfg.URL, "cluster", cfg.ClusterID, "client", cfg.ClientID)

	return &NATSClient{conn: conn}, nil
}

// Disabled returns a client that drops every publish.
func Disabled() *NATSClient {
	return &NATSClient{}
}

func (nc *NATSClient) Enabled() bool {
	return nc != nil && nc.conn != nil
}

func (nc *NATSClient) Publish(subject string, data interface{}) error {
	if !nc.Enabled() {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := nc.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}

	return nil
}

func (nc *NATSClient) Close() error {
	if nc != nil && nc.conn != nil {
		return nc.conn.Close()
	}
	return nil
}
