package store

const (
	createAccount = `INSERT INTO accounts (username, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING account_id, username, password_hash, role, is_locked, failed_attempts, created_at;`

	findAccountByUsername = `SELECT account_id, username, password_hash, role, is_locked, failed_attempts, created_at
    FROM accounts
    WHERE username = $1;`

	// registerFailedLogin is the single-statement atomic increment demanded
	// by the lockout policy: two concurrent failed logins for one account
	// must never both observe the same counter value. The lock flag is set
	// in the same statement once the new counter reaches the threshold and
	// is never cleared here: lockout is terminal until an out-of-band reset.
	registerFailedLogin = `UPDATE accounts
    SET failed_attempts = failed_attempts + 1,
        is_locked = is_locked OR failed_attempts + 1 >= $2
    WHERE account_id = $1
    RETURNING failed_attempts, is_locked;`

	resetFailedLogins = `UPDATE accounts
    SET failed_attempts = 0
    WHERE account_id = $1;`

	createTrack = `INSERT INTO tracks (artist_id, title, release_type, genre, content_key)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING track_id, artist_id, title, release_type, genre, content_key, uploaded_at;`

	findTrackByID = `SELECT track_id, artist_id, title, release_type, genre, content_key, uploaded_at
    FROM tracks
    WHERE track_id = $1;`

	trendingTracks = `SELECT t.track_id, t.artist_id, a.username, t.title, t.release_type, t.genre, t.uploaded_at,
        COUNT(s.sale_id) AS sales_count
    FROM tracks t
    JOIN accounts a ON t.artist_id = a.account_id
    LEFT JOIN sales s ON t.track_id = s.track_id
    GROUP BY t.track_id, a.username
    ORDER BY sales_count DESC, t.uploaded_at DESC
    LIMIT $1;`

	// recordSale relies on the UNIQUE (track_id, fan_id) constraint for the
	// at-most-one-sale invariant: the insert and the duplicate check are one
	// atomic operation, so a concurrent duplicate simply affects zero rows.
	recordSale = `INSERT INTO sales (track_id, fan_id, amount)
    VALUES ($1, $2, $3)
    ON CONFLICT (track_id, fan_id) DO NOTHING;`

	salesByArtist = `SELECT s.sale_id, s.track_id, s.fan_id, s.amount, s.recorded_at, t.title, a.username
    FROM sales s
    JOIN tracks t ON s.track_id = t.track_id
    JOIN accounts a ON s.fan_id = a.account_id
    WHERE t.artist_id = $1
    ORDER BY s.recorded_at DESC;`

	appendAuditEntry = `INSERT INTO audit_log (account_id, action, origin_addr)
    VALUES ($1, $2, $3);`

	recentAuditEntries = `SELECT l.entry_id, l.account_id, COALESCE(a.username, ''), l.action, l.origin_addr, l.recorded_at
    FROM audit_log l
    LEFT JOIN accounts a ON l.account_id = a.account_id
    ORDER BY l.recorded_at DESC
    LIMIT $1;`
)
