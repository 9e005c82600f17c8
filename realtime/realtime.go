package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	leaderboardClients = make(map[*websocket.Conn]bool) // Connected leaderboard watchers
	broadcast          = make(chan ScoreUpdate)         // Broadcast channel for updates
	mutex              sync.Mutex                       // Protects leaderboardClients
)

// ScoreUpdate is pushed to leaderboard watchers when a correct submission
// changes a user's points
type ScoreUpdate struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
}

// RegisterClient adds a WebSocket client to the leaderboard feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	leaderboardClients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the leaderboard feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(leaderboardClients, conn)
	mutex.Unlock()
}

// BroadcastScoreUpdate sends an update to all connected leaderboard watchers
func BroadcastScoreUpdate(update ScoreUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range leaderboardClients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(leaderboardClients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
