package playback

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/codeit-cli/codeit/log"
)

// eventListener observes mpv properties over a persistent IPC connection and
// translates change notifications into Element events.
type eventListener struct {
	socketPath string
	conn       net.Conn
	handler    EventHandler
	stopCh     chan struct{}
	mu         sync.Mutex
	listening  bool
}

func newEventListener(socketPath string, handler EventHandler) *eventListener {
	return &eventListener{
		socketPath: socketPath,
		handler:    handler,
		stopCh:     make(chan struct{}),
	}
}

// observedProperties are the mpv properties mirrored into transport state.
var observedProperties = []struct {
	id   int
	name string
}{
	{1, "time-pos"},
	{2, "duration"},
	{3, "pause"},
	{4, "paused-for-cache"},
	{5, "fullscreen"},
	{6, "eof-reached"},
}

// start subscribes to property observers and begins the read loop.
func (el *eventListener) start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	for _, prop := range observedProperties {
		_, err := doSendCommand(el.socketPath, []interface{}{"observe_property", prop.id, prop.name})
		if err != nil {
			return fmt.Errorf("observe %s: %w", prop.name, err)
		}
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}
	el.conn = conn
	el.listening = true

	go el.readLoop()

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// stop terminates the listener.
func (el *eventListener) stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	close(el.stopCh)
	if el.conn != nil {
		el.conn.Close()
	}
	el.listening = false
}

// readLoop reads newline-delimited JSON events from the persistent connection.
func (el *eventListener) readLoop() {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	buf := make([]byte, 4096)
	var remainder []byte

	for {
		select {
		case <-el.stopCh:
			return
		default:
		}

		if err := el.conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		n, err := el.conn.Read(buf)
		if err != nil {
			if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline") {
				continue // timeout is normal, keep listening
			}
			log.Warnf("event listener read error: %v", err)
			return
		}

		data := append(remainder, buf[:n]...)
		remainder = nil

		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			// Last incomplete line carries over to the next read
			if i == len(lines)-1 && !strings.HasSuffix(string(data), "\n") {
				remainder = []byte(line)
				continue
			}

			el.processLine(line)
		}
	}
}

// processLine parses a single mpv event and dispatches the mirrored Event.
func (el *eventListener) processLine(line string) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return // skip unparseable lines
	}

	eventType, ok := raw["event"].(string)
	if !ok || eventType != "property-change" {
		return
	}

	name, _ := raw["name"].(string)
	event, ok := translateProperty(name, raw["data"])
	if !ok {
		return
	}

	el.handler(event)
}

// translateProperty maps an observed mpv property change onto an Event.
func translateProperty(name string, data interface{}) (Event, bool) {
	switch name {
	case "time-pos":
		if pos, ok := data.(float64); ok {
			return Event{Kind: EventTimeUpdate, Float: pos}, true
		}
	case "duration":
		if dur, ok := data.(float64); ok {
			return Event{Kind: EventDurationChange, Float: dur}, true
		}
	case "pause":
		if paused, ok := data.(bool); ok {
			return Event{Kind: EventPauseChange, Bool: paused}, true
		}
	case "paused-for-cache":
		if stalled, ok := data.(bool); ok {
			if stalled {
				return Event{Kind: EventWaiting}, true
			}
			return Event{Kind: EventCanPlay}, true
		}
	case "fullscreen":
		if on, ok := data.(bool); ok {
			return Event{Kind: EventFullscreenChange, Bool: on}, true
		}
	case "eof-reached":
		if eof, ok := data.(bool); ok && eof {
			return Event{Kind: EventEnded}, true
		}
	}
	return Event{}, false
}
