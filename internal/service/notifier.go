package service

// Notifier pushes change events to connected presentation clients. The
// websocket Hub implements it.
type Notifier interface {
	Broadcast(event string, data interface{})
}
