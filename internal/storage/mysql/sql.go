package mysql

const insertChatLogSQL = `
INSERT INTO chat_log (user_id, role, intent, message, reply)
VALUES (?, ?, ?, ?, ?)
`

const listRecentSQL = `
SELECT id, user_id, role, intent, message, reply, created_at
FROM chat_log
ORDER BY created_at DESC, id DESC
LIMIT ?
`
