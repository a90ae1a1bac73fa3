package sqlite

const ddlMessages = `CREATE TABLE IF NOT EXISTS conversation_messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT    NOT NULL,
	role       TEXT    NOT NULL,
	text       TEXT    NOT NULL,
	created_at INTEGER NOT NULL
)`

const ddlMessagesUserIndex = `CREATE INDEX IF NOT EXISTS idx_conversation_messages_user
	ON conversation_messages (user_id, id)`

const (
	queryInsertMessage = `INSERT INTO conversation_messages (user_id, role, text, created_at) VALUES (?, ?, ?, ?)`

	// Newest first so LIMIT takes the tail; the caller reverses.
	queryListRecent = `SELECT id, user_id, role, text, created_at
	FROM conversation_messages
	WHERE user_id = ?
	ORDER BY id DESC
	LIMIT ?`

	queryDeleteBefore = `DELETE FROM conversation_messages WHERE created_at < ?`
)
