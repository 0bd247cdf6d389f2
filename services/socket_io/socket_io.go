package socket_io

import (
	"LevelUp/middleware"
	models "LevelUp/models/postgres"
	"LevelUp/utils"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

/*
 * EventGateway is the realtime side of the events API: clients watch an
 * event and get notified when gamers sign up or cancel, or when the
 * event itself is deleted. It wraps the socket.io server and a map of
 * username -> socket connections.
 */
type EventGateway struct {
	Sio_server *socket.Server
	// Map to track username -> socket connections
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewEventGateway() *EventGateway {
	return &EventGateway{
		UserConnections: make(map[string]*socket.Socket),
	}
}

func (sio *EventGateway) AddConnection(username string, client *socket.Socket) {
	sio.mutex.Lock()
	defer sio.mutex.Unlock()
	sio.UserConnections[username] = client
}

func (sio *EventGateway) RemoveConnection(username string) {
	sio.mutex.Lock()
	defer sio.mutex.Unlock()
	delete(sio.UserConnections, username)
}

func (sio *EventGateway) GetConnection(username string) (*socket.Socket, bool) {
	sio.mutex.RLock()
	defer sio.mutex.RUnlock()
	client, exists := sio.UserConnections[username]
	return client, exists
}

// eventRoom is the socket.io room grouping all watchers of one event.
func eventRoom(eventID uint) socket.Room {
	return socket.Room(fmt.Sprintf("event:%d", eventID))
}

// Start wires the socket.io server into the gin router and registers
// the per-connection handlers.
func (sio *EventGateway) Start(router *gin.Engine, db *gorm.DB) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load
	// and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, username := verifyUserConnection(client, db)
		if !success {
			return
		}

		sio.AddConnection(username, client)
		logrus.WithField("username", username).Info("socket.io client connected")

		// Join the room of an event to receive attendance updates
		client.On("watch_event", handleWatchEvent(client, db))

		// Stop receiving updates for an event
		client.On("unwatch_event", handleUnwatchEvent(client))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", func(...interface{}) {
			sio.RemoveConnection(username)
			logrus.WithField("username", username).Info("socket.io client disconnected")
		})
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	logrus.Info("Socket gateway started")
}

// verifyUserConnection authenticates a socket.io client using the JWT
// set on the handshake auth data, and resolves the associated username.
func verifyUserConnection(client *socket.Socket, db *gorm.DB) (success bool, username string) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, ""
	}

	email, err := middleware.SocketioJWTDecoder(authData)
	if err != nil {
		client.Emit("error", gin.H{
			"error": "Authentication failed: invalid JWT. Remember to set it on the 'authorization' field with the 'Bearer ' prefix.",
		})
		return false, ""
	}

	var user models.User
	if result := db.Where("email = ?", email).First(&user); result.Error != nil {
		client.Emit("error", gin.H{"error": "Authentication failed: could not find user"})
		return false, ""
	}

	return true, user.Username
}

func handleWatchEvent(client *socket.Socket, db *gorm.DB) func(args ...interface{}) {
	return func(args ...interface{}) {
		eventID, ok := eventIDArg(args)
		if !ok {
			client.Emit("error", gin.H{"error": "watch_event requires an event id"})
			return
		}

		if _, err := utils.CheckEventExists(db, eventID); err != nil {
			client.Emit("error", gin.H{"error": "Event does not exist."})
			return
		}

		client.Join(eventRoom(eventID))
		client.Emit("watching", gin.H{"event_id": eventID})
	}
}

func handleUnwatchEvent(client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		eventID, ok := eventIDArg(args)
		if !ok {
			client.Emit("error", gin.H{"error": "unwatch_event requires an event id"})
			return
		}
		client.Leave(eventRoom(eventID))
	}
}

// eventIDArg extracts the event id from the socket.io payload. JSON
// numbers arrive as float64, but clients sending strings work too.
func eventIDArg(args []interface{}) (uint, bool) {
	if len(args) == 0 {
		return 0, false
	}
	switch v := args[0].(type) {
	case float64:
		if v < 1 {
			return 0, false
		}
		return uint(v), true
	case string:
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil || id < 1 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}
