package pins

import (
	"log"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
)

// EventChannel is the Postgres NOTIFY channel carrying pin change events.
const EventChannel = "pin_events"

func Init() {
	if err := db.EnsureSchema(db.DB, "map_data"); err != nil {
		log.Fatal("Failed to ensure schema map_data: ", err)
	}

	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("Failed to enable uuid-ossp extension:", err)
	}

	if err := db.DB.AutoMigrate(&Pin{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	if err := installNotifyTrigger(); err != nil {
		log.Fatal("Failed to install pin notify trigger: ", err)
	}
}

// installNotifyTrigger makes the database itself the realtime feed: every
// insert/update/delete on map_data.pins is published on the pin_events
// channel with the full row, so changes from any writer (this service, a SQL
// console, a future admin tool) reach subscribers. DELETE publishes the
// pre-deletion row.
func installNotifyTrigger() error {
	if err := db.DB.Exec(`
		CREATE OR REPLACE FUNCTION map_data.notify_pin_change() RETURNS trigger AS $$
		DECLARE
			rec map_data.pins;
		BEGIN
			IF (TG_OP = 'DELETE') THEN
				rec := OLD;
			ELSE
				rec := NEW;
			END IF;
			PERFORM pg_notify(
				'pin_events',
				json_build_object('action', TG_OP, 'record', row_to_json(rec))::text
			);
			RETURN rec;
		END;
		$$ LANGUAGE plpgsql;
	`).Error; err != nil {
		return err
	}

	if err := db.DB.Exec(`
		DROP TRIGGER IF EXISTS pins_notify ON map_data.pins;
	`).Error; err != nil {
		return err
	}

	return db.DB.Exec(`
		CREATE TRIGGER pins_notify
		AFTER INSERT OR UPDATE OR DELETE ON map_data.pins
		FOR EACH ROW EXECUTE FUNCTION map_data.notify_pin_change();
	`).Error
}
