package live

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait = time.Second

	// Frames are flushed to a client at most this often.
	pubResolution  = 50 * time.Millisecond
	pingResolution = 500 * time.Millisecond
	// Number of lost pings tolerated before the peer is considered gone.
	pongWait = pingResolution * 4

	maxMessageSize = 512
)

// ErrPongDeadlineExceeded ends a client that stopped answering pings.
var ErrPongDeadlineExceeded = errors.New("client disconnect, pong deadline exceeded")

// client pushes hub updates to one websocket.
type client struct {
	conn    *websocket.Conn
	updates <-chan *Update
}

// sync runs the read, liveness and publish loops until the peer leaves or
// ctx is done. A clean close returns nil.
func (c *client) sync(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	// gorilla allows one concurrent writer; pings and frames share it
	writes := make(chan func() error)

	group.Go(func() error {
		return c.readMessages()
	})
	group.Go(func() error {
		return c.pingPong(groupCtx, writes)
	})
	group.Go(func() error {
		return c.publish(groupCtx, writes)
	})
	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				// unblock the reader
				c.conn.Close()
				return nil
			case write := <-writes:
				if err := write(); err != nil {
					return err
				}
			}
		}
	})

	err := group.Wait()
	if isClosure(err) {
		return nil
	}
	return err
}

// readMessages drains the peer so that control frames are processed.
func (c *client) readMessages() error {
	c.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return err
		}
	}
}

func (c *client) pingPong(ctx context.Context, writes chan<- func() error) error {
	pong := make(chan struct{}, 1)
	c.conn.SetPongHandler(func(string) error {
		select {
		case pong <- struct{}{}:
		default:
		}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pong:
			lastPong = time.Now()
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if !submit(ctx, writes, func() error {
				if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return fmt.Errorf("ping: %w", err)
				}
				return nil
			}) {
				return nil
			}
		}
	}
}

// publish sends the newest pending update on every tick.
func (c *client) publish(ctx context.Context, writes chan<- func() error) error {
	var pending *Update
	flush := channerics.NewTicker(ctx.Done(), pubResolution)
	for {
		select {
		case <-ctx.Done():
			return nil
		case u := <-c.updates:
			pending = u
		case <-flush:
			if pending == nil {
				continue
			}
			u := pending
			pending = nil
			if !submit(ctx, writes, func() error {
				if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return fmt.Errorf("set deadline: %w", err)
				}
				if err := c.conn.WriteJSON(u); err != nil {
					return fmt.Errorf("publish: %w", err)
				}
				return nil
			}) {
				return nil
			}
		}
	}
}

// submit hands write to the writer loop, false once ctx is done.
func submit(ctx context.Context, writes chan<- func() error, write func() error) bool {
	select {
	case writes <- write:
		return true
	case <-ctx.Done():
		return false
	}
}

func isClosure(err error) bool {
	return err != nil && websocket.IsCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived)
}
