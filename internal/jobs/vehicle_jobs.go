package jobs

import "context"

// ReconcileVehicleAvailability repairs is_rented drift. A vehicle must be
// rented iff a Processing booking references it; each direction of drift is
// fixed and logged as an error because it means a past transaction was
// bypassed (manual SQL, partial restore).
func (jr *JobRunner) ReconcileVehicleAvailability() {
	jr.runWithRecovery("ReconcileVehicleAvailability", func() {
		ctx := context.Background()

		// Vehicles flagged rented with no Processing booking.
		staleRented := `
			UPDATE vehicles
			SET is_rented = FALSE
			WHERE is_rented = TRUE
			  AND NOT EXISTS (
			      SELECT 1 FROM bookings
			      WHERE bookings.license_plate = vehicles.license_plate
			        AND bookings.booking_status = 'Processing'
			  )
			RETURNING id, license_plate
		`
		jr.repair(ctx, staleRented, "released vehicle with no active booking")

		// Vehicles available despite a Processing booking.
		staleAvailable := `
			UPDATE vehicles
			SET is_rented = TRUE
			WHERE is_rented = FALSE
			  AND EXISTS (
			      SELECT 1 FROM bookings
			      WHERE bookings.license_plate = vehicles.license_plate
			        AND bookings.booking_status = 'Processing'
			  )
			RETURNING id, license_plate
		`
		jr.repair(ctx, staleAvailable, "re-marked vehicle with active booking as rented")
	})
}

func (jr *JobRunner) repair(ctx context.Context, query, what string) {
	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		jr.log.ErrorContext(ctx, "Availability reconciliation query failed", "error", err)
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int32
		var plate string
		if err := rows.Scan(&id, &plate); err != nil {
			jr.log.ErrorContext(ctx, "Failed to scan reconciled vehicle", "error", err)
			continue
		}
		jr.log.ErrorContext(ctx, "Availability drift repaired",
			"repair", what,
			"vehicle_id", id,
			"license_plate", plate)
		count++
	}
	if err := rows.Err(); err != nil {
		jr.log.ErrorContext(ctx, "Error iterating reconciled vehicles", "error", err)
		return
	}

	if count > 0 {
		jr.log.InfoContext(ctx, "Availability reconciliation applied repairs", "repair", what, "count", count)
	}
}
