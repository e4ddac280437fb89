package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"walletfeed/internal/domain"
	"walletfeed/internal/metrics"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// myUpdatesSubscription mirrors the backend's myUpdates document: wallet
// snapshot plus a discriminated update union.
const myUpdatesSubscription = `subscription myUpdates {
  myUpdates {
    errors {
      message
    }
    me {
      id
      defaultAccount {
        id
        wallets {
          id
          walletCurrency
          balance
        }
      }
    }
    update {
      type: __typename
      ... on Price {
        base
        offset
        currencyUnit
      }
      ... on LnUpdate {
        paymentHash
        status
      }
      ... on OnChainUpdate {
        txNotificationType
        txHash
        amount
        usdPerSat
      }
      ... on IntraLedgerUpdate {
        txNotificationType
        amount
        usdPerSat
      }
    }
  }
}`

const (
	subscribeID      = "1"
	handshakeTimeout = 10 * time.Second
	ackTimeout       = 10 * time.Second
	maxBackoff       = 30 * time.Second
)

// ApplyFunc receives each decoded subscription event.
type ApplyFunc func(ctx context.Context, upd domain.SubscriptionUpdate)

// Client keeps one graphql-transport-ws subscription alive against the wallet
// backend, reconnecting with backoff. Decode failures are dropped events, not
// connection failures.
type Client struct {
	url       string
	authToken string
	apply     ApplyFunc

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	writeMu sync.Mutex

	ReadTimeout  time.Duration
	PingInterval time.Duration
}

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewClient(url string, authToken string, apply ApplyFunc) *Client {
	return &Client{
		url:          url,
		authToken:    authToken,
		apply:        apply,
		ReadTimeout:  60 * time.Second,
		PingInterval: 30 * time.Second,
	}
}

// Start launches the connect loop.
func (c *Client) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.runLoop(ctx)
}

// Stop terminates the loop and waits for it to exit.
func (c *Client) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
}

func (c *Client) runLoop(ctx context.Context) {
	defer c.wg.Done()
	retry := 0

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, err := c.connect(ctx)
		if err != nil {
			logrus.WithError(err).Warnf("Stream connection failed, retry %d", retry)
			metrics.IncReconnect()
			delay := backoffDelay(retry)
			retry++

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
				continue
			}
		}

		retry = 0
		logrus.Info("✅ Subscription stream connected")
		c.readMessages(ctx, conn)
		_ = conn.Close()
	}
}

// backoffDelay doubles per retry up to maxBackoff.
func backoffDelay(retry int) time.Duration {
	delay := time.Second << uint(retry)
	if delay > maxBackoff || delay <= 0 {
		return maxBackoff
	}
	return delay
}

// writeJSON serializes writes to the connection. gorilla/websocket allows at
// most one concurrent writer; the keepalive ticker and the read loop's pong
// replies share the conn.
func (c *Client) writeJSON(conn *websocket.Conn, msg wsMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

// connect dials, performs the connection_init/connection_ack handshake and
// starts the myUpdates subscription.
func (c *Client) connect(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
		Subprotocols:     []string{"graphql-transport-ws"},
	}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", c.url, err)
	}

	initPayload, err := json.Marshal(map[string]string{"Authorization": "Bearer " + c.authToken})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to marshal init payload: %w", err)
	}
	if err = c.writeJSON(conn, wsMessage{Type: "connection_init", Payload: initPayload}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send connection_init: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(ackTimeout))
	var ack wsMessage
	if err = conn.ReadJSON(&ack); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to read connection_ack: %w", err)
	}
	if ack.Type != "connection_ack" {
		_ = conn.Close()
		return nil, fmt.Errorf("expected connection_ack, got %q", ack.Type)
	}

	subPayload, err := json.Marshal(map[string]string{"query": myUpdatesSubscription})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to marshal subscribe payload: %w", err)
	}
	if err = c.writeJSON(conn, wsMessage{ID: subscribeID, Type: "subscribe", Payload: subPayload}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send subscribe: %w", err)
	}

	return conn, nil
}

// readMessages pumps the connection until it breaks or ctx is canceled.
func (c *Client) readMessages(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	ping := time.NewTicker(c.PingInterval)
	defer ping.Stop()
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ping.C:
				if err := c.writeJSON(conn, wsMessage{Type: "ping"}); err != nil {
					return
				}
			}
		}
	}()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(c.ReadTimeout))
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil {
				logrus.WithError(err).Warn("Stream read failed, reconnecting")
			}
			return
		}

		switch msg.Type {
		case "next":
			upd, err := decodeMyUpdates(msg.Payload, time.Now().UTC())
			if err != nil {
				// No data this cycle; the feed self-heals on the next event.
				logrus.WithError(err).Warn("Dropping undecodable subscription event")
				continue
			}
			c.apply(ctx, upd)
		case "ping":
			if err := c.writeJSON(conn, wsMessage{Type: "pong"}); err != nil {
				return
			}
		case "pong", "ka":
			// keepalive, nothing to do
		case "error":
			logrus.Warnf("Subscription error frame: %s", string(msg.Payload))
			return
		case "complete":
			logrus.Warn("Subscription completed by server, reconnecting")
			return
		}
	}
}
