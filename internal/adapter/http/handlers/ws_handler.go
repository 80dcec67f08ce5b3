package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"hauling_pros/internal/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler attaches admin dashboards to the live estimate feed.
type WebSocketHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *realtime.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Subscribe godoc
// @Summary      Live estimate feed
// @Tags         admin
// @Success      101
// @Security     Bearer
// @Router       /admin/ws [get]
func (h *WebSocketHandler) Subscribe(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("[realtime][handler] upgrade failed")
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	// Clients never send anything meaningful; reading drives close detection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("conn_id", id).Msg("[realtime][handler] connection dropped")
			}
			return
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
