package live

import (
	"encoding/json"
	"testing"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

// Payload shape produced by the pins_notify trigger.
func TestEventDecodesTriggerPayload(t *testing.T) {
	payload := `{
		"action": "UPDATE",
		"record": {
			"id": "3e0170f0-64bb-4f42-92c7-9bd4f4a0a7f2",
			"title": "Lake Charles Shelter",
			"address": "123 Ryan St, Lake Charles, LA",
			"status": "critical",
			"summary": "Capacity 200",
			"lat": 30.2266,
			"lng": -93.2174,
			"show_donate": true,
			"show_volunteer": false,
			"show_supplies": true
		}
	}`

	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Action != ActionUpdate {
		t.Errorf("action = %q", ev.Action)
	}
	if ev.Record.ID.String() != "3e0170f0-64bb-4f42-92c7-9bd4f4a0a7f2" {
		t.Errorf("id = %s", ev.Record.ID)
	}
	if ev.Record.Status != pins.StatusCritical {
		t.Errorf("status = %q", ev.Record.Status)
	}
	if !ev.Record.ShowDonate || ev.Record.ShowVolunteer || !ev.Record.ShowSupplies {
		t.Errorf("flags = %v %v %v", ev.Record.ShowDonate, ev.Record.ShowVolunteer, ev.Record.ShowSupplies)
	}
	if ev.Record.Lat != 30.2266 || ev.Record.Lng != -93.2174 {
		t.Errorf("coords = %f, %f", ev.Record.Lat, ev.Record.Lng)
	}
}
