package events_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/south-indian-kitchen/backend/controllers"
	"github.com/south-indian-kitchen/backend/events"
	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/utils"
)

func TestHubBroadcastsCartUpdate(t *testing.T) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/events/ws", controllers.EventsHandler)
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/events/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	items := []models.CartItem{
		{Dish: models.Dish{ID: "1", Name: "Masala Dosa", Price: 120}, Quantity: 2},
	}

	// The handler registers the connection right after the upgrade; give
	// it a moment before broadcasting.
	time.Sleep(300 * time.Millisecond)
	events.BroadcastCartUpdate("s1", items, 240, 2)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	assert.NoError(t, err)

	var msg events.Message
	assert.NoError(t, json.Unmarshal(frame, &msg))
	assert.Equal(t, events.EventCartUpdate, msg.Event)

	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "s1", data["session"])
	assert.Equal(t, 240.0, data["total"])
	assert.Equal(t, 2.0, data["count"])
}
