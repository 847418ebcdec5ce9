package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"mnkgame/internal/game"
)

const wsIdlePingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) serveWS(controller *game.Controller, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: s.hub, gameID: controller.ID(), send: make(chan []byte, 16)}
	s.hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := client.writePump(conn); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

// writePump drains the client's send queue onto the connection and pings
// after wsIdlePingInterval of silence so idle proxies keep the socket open.
func (c *Client) writePump(conn *websocket.Conn) error {
	ping := mustMarshal(wsMessage{Type: "ping"})
	idle := time.NewTicker(wsIdlePingInterval)
	defer idle.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			idle.Reset(wsIdlePingInterval)
		case <-idle.C:
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return err
			}
		}
	}
}
