package live

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
	"github.com/lib/pq"
)

// StartListener subscribes to the pin_events NOTIFY channel and feeds the hub
// in delivery order. reload is called after a dropped connection comes back,
// since notifications sent while disconnected are lost.
func StartListener(dsn string, hub *Hub, reload func() ([]pins.Pin, error)) error {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Printf("[live] listener event %d: %v", ev, err)
			}
		})

	if err := listener.Listen(pins.EventChannel); err != nil {
		return fmt.Errorf("listen on %s: %w", pins.EventChannel, err)
	}

	go consume(listener, hub, reload)
	return nil
}

func consume(listener *pq.Listener, hub *Hub, reload func() ([]pins.Pin, error)) {
	for {
		select {
		case n, ok := <-listener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// Connection re-established; anything sent in between is
				// gone, so resync from the store.
				list, err := reload()
				if err != nil {
					log.Printf("[live] resync after reconnect failed: %v", err)
					continue
				}
				hub.Load(list)
				continue
			}

			var ev Event
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				log.Printf("[live] bad event payload: %v", err)
				continue
			}
			hub.Apply(ev)

		case <-time.After(90 * time.Second):
			go func() {
				if err := listener.Ping(); err != nil {
					log.Printf("[live] listener ping: %v", err)
				}
			}()
		}
	}
}
