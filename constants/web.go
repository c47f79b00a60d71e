package constants

import "time"

// Web Front-end
const (
	// WebAddr is the default listen address for the web front-end
	WebAddr = ":8080"

	// WebSendBuffer is the per-client queue of pending frame messages
	WebSendBuffer = 16

	// WebWriteWait is the deadline for a single websocket write
	WebWriteWait = 10 * time.Second

	// WebPongWait is how long a silent client is kept before disconnect
	WebPongWait = 60 * time.Second

	// WebPingPeriod must be below WebPongWait
	WebPingPeriod = (WebPongWait * 9) / 10
)
