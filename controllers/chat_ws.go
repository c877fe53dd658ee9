package controller

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

const chatPollInterval = 2 * time.Second

// HandleChatFeedWS streams newly persisted chat messages to the connected
// client. The client receives each message once, in id order, starting
// from messages created after the connection was opened.
func HandleChatFeedWS(s *store.Store, logger *logrus.Logger) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		lastID, err := s.LastChatMessageID()
		if err != nil {
			logger.WithError(err).Error("resolving chat feed start")
			return
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				// Drain control frames; a read error means the peer left.
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(chatPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}

			messages, err := s.ListChatMessagesAfter(lastID)
			if err != nil {
				logger.WithError(err).Error("polling chat messages")
				return
			}
			for i := range messages {
				if err := c.WriteJSON(serializer.NewChatMessageSummary(&messages[i])); err != nil {
					return
				}
				lastID = messages[i].ID
			}
		}
	}
}
