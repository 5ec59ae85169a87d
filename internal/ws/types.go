package ws

const (
	// client to server
	MsgMoveSelect     = "move:select"
	MsgRematchRequest = "rematch:request"
	MsgGameLeave      = "game:leave"

	// server to client
	MsgConnected      = "connected"
	MsgPlayerJoined   = "player:joined"
	MsgPlayerLeft     = "player:left"
	MsgSessionCreated = "session:created"
	MsgSessionUpdated = "session:updated"
	MsgSessionDeleted = "session:deleted"
)
