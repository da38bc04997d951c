package store

const (
	upsertSessionToken = `
		INSERT INTO session (key, token, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET
			token = excluded.token,
			saved_at = excluded.saved_at;`

	getSessionToken = `
		SELECT token
		FROM session
		WHERE key = $1;`

	deleteSessionToken = `
		DELETE FROM session
		WHERE key = $1;`
)
