package orders

import (
	"context"
	"log"
	"net/http"
	"sync"

	"mercato/mq"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var wsClients = struct {
	sync.Mutex
	conns map[*websocket.Conn]bool
}{conns: make(map[*websocket.Conn]bool)}

// StreamOrders upgrades the connection and keeps it registered until
// the client goes away. Events arrive via the broadcaster goroutine.
func StreamOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	wsClients.Lock()
	wsClients.conns[conn] = true
	wsClients.Unlock()

	go func(c *websocket.Conn) {
		defer func() {
			wsClients.Lock()
			delete(wsClients.conns, c)
			wsClients.Unlock()
			c.Close()
		}()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}(conn)
}

// StartBroadcaster forwards order events from the message queue to
// every connected websocket client. Run once from main.
func StartBroadcaster(ctx context.Context) {
	events := mq.Subscribe(ctx)
	go func() {
		for ev := range events {
			if ev.EntityType != "order" {
				continue
			}
			broadcast(ev)
		}
		log.Println("[orders] event stream closed")
	}()
}

func broadcast(ev mq.Event) {
	wsClients.Lock()
	defer wsClients.Unlock()

	for conn := range wsClients.conns {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(wsClients.conns, conn)
		}
	}
}
