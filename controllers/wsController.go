package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"go-crm-management/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// Message is the envelope pushed to websocket subscribers.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket subscribes a client to the live order feed.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// notifyOrderPlaced pushes a "newOrder" event to every subscriber.
func notifyOrderPlaced(order models.Order) {
	mu.Lock()
	defer mu.Unlock()

	sendMessageToAllClients(Message{
		Event:   "newOrder",
		Payload: order,
	})
}

func sendMessageToAllClients(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("Error marshaling message:", err)
		return
	}

	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			log.Println("Error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}
