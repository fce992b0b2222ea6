package bot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/analyzer"
)

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultAttempts       = 3
)

// Requester sends a request and waits for the reply. *nats.Conn is one.
type Requester interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

type Client struct {
	nc       Requester
	channel  string
	timeout  time.Duration
	attempts uint
	delay    time.Duration
}

func NewClient(nc Requester, channel string) *Client {
	return &Client{
		nc:       nc,
		channel:  channel,
		timeout:  DefaultRequestTimeout,
		attempts: DefaultAttempts,
		delay:    100 * time.Millisecond,
	}
}

// SetRetries sets how many times a request is tried and the first back-off
// delay.
func (c *Client) SetRetries(attempts uint, delay time.Duration) {
	c.attempts = attempts
	c.delay = delay
}

// RequestMoves sends a position to a worker and returns its result. Failed
// requests are retried with back-off; an answer that reports an error is
// not.
func (c *Client) RequestMoves(ctx context.Context, p *analyzer.Position) (*analyzer.Result, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var res analyzer.Result
	err = retry.Do(
		func() error {
			rctx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			msg, err := c.nc.RequestWithContext(rctx, c.channel, data)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(msg.Data, &res); err != nil {
				return retry.Unrecoverable(err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Msg("no-reply-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return &res, errors.New("worker returned: " + res.Error)
	}
	return &res, nil
}
