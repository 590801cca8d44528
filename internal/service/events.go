package service

// Broadcaster receives change events after a write has been persisted.
// *ws.Hub implements it.
type Broadcaster interface {
	Publish(payload map[string]interface{})
}

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(map[string]interface{}) {}

func orNoop(b Broadcaster) Broadcaster {
	if b == nil {
		return noopBroadcaster{}
	}
	return b
}
