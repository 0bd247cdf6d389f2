package socket_io

import (
	"github.com/gin-gonic/gin"
)

// All notifier methods are nil-safe so the HTTP controllers can run
// without the gateway (tests, or deployments without realtime).

// NotifyAttendeeJoined broadcasts a new signup to everyone watching the event.
func (sio *EventGateway) NotifyAttendeeJoined(eventID uint, username string, attendees int64) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	sio.Sio_server.To(eventRoom(eventID)).Emit("attendee_joined", gin.H{
		"event_id":            eventID,
		"username":            username,
		"number_of_attendees": attendees,
	})
}

// NotifyAttendeeLeft broadcasts a cancelled signup to everyone watching the event.
func (sio *EventGateway) NotifyAttendeeLeft(eventID uint, username string, attendees int64) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	sio.Sio_server.To(eventRoom(eventID)).Emit("attendee_left", gin.H{
		"event_id":            eventID,
		"username":            username,
		"number_of_attendees": attendees,
	})
}

// NotifyEventCancelled tells watchers the event itself is gone.
func (sio *EventGateway) NotifyEventCancelled(eventID uint) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	sio.Sio_server.To(eventRoom(eventID)).Emit("event_cancelled", gin.H{
		"event_id": eventID,
	})
}
