package stores

// Sentinel -1 ("defect count unknown") contributes nothing to defect sums.
const knownDefectsExpr = `CASE WHEN defect_count = -1 THEN 0 ELSE defect_count END`

const (
	pgInsertIfAbsentQuery = `
		INSERT INTO event (event_id, factory_id, line_id, machine_id, event_time, received_time, duration_ms, defect_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id) DO NOTHING`

	pgConditionalUpdateQuery = `
		UPDATE event
		SET factory_id = $2, line_id = $3, machine_id = $4, event_time = $5,
		    received_time = $6, duration_ms = $7, defect_count = $8
		WHERE event_id = $1
		  AND received_time < $6
		  AND (factory_id <> $2 OR line_id <> $3 OR machine_id <> $4 OR event_time <> $5
		       OR duration_ms <> $7 OR defect_count <> $8)`

	pgAggregateByMachineQuery = `
		SELECT COUNT(*), COALESCE(SUM(` + knownDefectsExpr + `), 0)
		FROM event
		WHERE machine_id = $1
		  AND event_time >= $2
		  AND event_time <  $3`

	pgAggregateTopLinesQuery = `
		SELECT line_id, COUNT(*) AS event_count, COALESCE(SUM(` + knownDefectsExpr + `), 0) AS total_defects
		FROM event
		WHERE factory_id = $1
		  AND event_time >= $2
		  AND event_time <  $3
		GROUP BY line_id
		ORDER BY total_defects DESC, event_count DESC, line_id ASC
		LIMIT $4`

	pgFindByEventIDQuery = `
		SELECT event_id, factory_id, line_id, machine_id, event_time, received_time, duration_ms, defect_count
		FROM event
		WHERE event_id = $1`
)

// SQLite variants bind positionally with "?"; times are unix nanoseconds.
const (
	sqliteInsertIfAbsentQuery = `
		INSERT INTO event (event_id, factory_id, line_id, machine_id, event_time, received_time, duration_ms, defect_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id) DO NOTHING`

	sqliteConditionalUpdateQuery = `
		UPDATE event
		SET factory_id = ?1, line_id = ?2, machine_id = ?3, event_time = ?4,
		    received_time = ?5, duration_ms = ?6, defect_count = ?7
		WHERE event_id = ?8
		  AND received_time < ?5
		  AND (factory_id <> ?1 OR line_id <> ?2 OR machine_id <> ?3 OR event_time <> ?4
		       OR duration_ms <> ?6 OR defect_count <> ?7)`

	sqliteAggregateByMachineQuery = `
		SELECT COUNT(*), COALESCE(SUM(` + knownDefectsExpr + `), 0)
		FROM event
		WHERE machine_id = ?
		  AND event_time >= ?
		  AND event_time <  ?`

	sqliteAggregateTopLinesQuery = `
		SELECT line_id, COUNT(*) AS event_count, COALESCE(SUM(` + knownDefectsExpr + `), 0) AS total_defects
		FROM event
		WHERE factory_id = ?
		  AND event_time >= ?
		  AND event_time <  ?
		GROUP BY line_id
		ORDER BY total_defects DESC, event_count DESC, line_id ASC
		LIMIT ?`

	sqliteFindByEventIDQuery = `
		SELECT event_id, factory_id, line_id, machine_id, event_time, received_time, duration_ms, defect_count
		FROM event
		WHERE event_id = ?`
)
