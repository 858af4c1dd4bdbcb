// Package twitch is the chat transport: a Twitch IRC client over websocket
// that delivers inbound chat lines and carries replies back.
package twitch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultServerURL = "wss://irc-ws.chat.twitch.tv:443"

const (
	reconnectBaseBackoff = time.Second
	reconnectMaxBackoff  = time.Minute
	messageBuffer        = 64
)

// Message is one inbound chat line. Self marks the bot's own messages echoed
// back by the server.
type Message struct {
	Channel  string
	Username string
	Text     string
	Self     bool
}

type Config struct {
	ServerURL string
	Username  string
	Token     string
	Channel   string
}

type Client struct {
	cfg      Config
	l        *logrus.Entry
	messages chan Message

	connMu sync.Mutex
	conn   *websocket.Conn
}

func New(cfg Config, l *logrus.Logger) *Client {
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	return &Client{
		cfg:      cfg,
		l:        l.WithField("component", "twitch"),
		messages: make(chan Message, messageBuffer),
	}
}

// Messages is the inbound chat stream. Closed when Run returns.
func (c *Client) Messages() <-chan Message {
	return c.messages
}

// Run connects, logs in and pumps inbound lines until ctx is canceled,
// reconnecting with exponential backoff after connection loss.
func (c *Client) Run(ctx context.Context) error {
	defer close(c.messages)

	// a blocked read only returns once the socket closes
	go func() {
		<-ctx.Done()
		c.closeConn()
	}()

	backoff := reconnectBaseBackoff
	for {
		if err := c.connect(ctx); err != nil {
			c.l.WithError(err).Warnf("connect failed, retrying in %s", backoff)
		} else {
			backoff = reconnectBaseBackoff
			if err := c.readLoop(ctx); err != nil {
				c.l.WithError(err).Warnf("connection lost, reconnecting in %s", backoff)
			}
		}
		c.closeConn()

		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > reconnectMaxBackoff {
			backoff = reconnectMaxBackoff
		}
	}
}

// Say sends one chat line to the channel.
func (c *Client) Say(channel, text string) error {
	return c.writeLine(fmt.Sprintf("PRIVMSG #%s :%s", channel, text))
}

func (c *Client) connect(ctx context.Context) error {
	conn, resp, dialErr := websocket.DefaultDialer.DialContext(ctx, c.cfg.ServerURL, nil)
	if dialErr != nil {
		return errors.Wrap(dialErr, "dial chat server")
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	login := []string{
		"PASS oauth:" + c.cfg.Token,
		"NICK " + c.cfg.Username,
		"CAP REQ :twitch.tv/tags twitch.tv/commands",
		"JOIN #" + c.cfg.Channel,
	}
	for _, line := range login {
		if err := c.writeLine(line); err != nil {
			return err
		}
	}

	c.l.WithField("channel", c.cfg.Channel).Info("connected to chat")
	return nil
}

func (c *Client) readLoop(ctx context.Context) error {
	for {
		conn := c.currentConn()
		if conn == nil {
			return errors.New("connection closed")
		}
		_, payload, readErr := conn.ReadMessage()
		if readErr != nil {
			return errors.Wrap(readErr, "read chat socket")
		}

		// the server batches several IRC lines into one frame
		for _, raw := range strings.Split(string(payload), "\r\n") {
			line, ok := parseLine(raw)
			if !ok {
				continue
			}
			switch line.Command {
			case "PING":
				if err := c.writeLine("PONG :" + line.Text); err != nil {
					return err
				}
			case "PRIVMSG":
				msg := Message{
					Channel:  line.Channel,
					Username: line.Nick,
					Text:     line.Text,
					Self:     strings.EqualFold(line.Nick, c.cfg.Username),
				}
				select {
				case c.messages <- msg:
				case <-ctx.Done():
					return ctx.Err() //nolint:wrapcheck
				}
			}
		}
	}
}

func (c *Client) writeLine(line string) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn == nil {
		return errors.New("not connected")
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(line+"\r\n")); err != nil {
		return errors.Wrap(err, "write chat socket")
	}
	return nil
}

func (c *Client) currentConn() *websocket.Conn {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	return c.conn
}

func (c *Client) closeConn() {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
