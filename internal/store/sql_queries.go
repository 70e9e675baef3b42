package store

import (
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	recordingsTable   = "recordings"
	chatsTable        = "chats"
	chatMessagesTable = "chat_messages"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recordingColumns = []string{
	"recording_id",
	"user_id",
	"object_key",
	"file_name",
	"content_type",
	"is_encrypted",
	"encryption_iv",
	"encryption_salt",
	"encrypted_password",
	"transcript",
	"transcript_encrypted",
	"transcription_status",
	"created_at",
}

var chatColumns = []string{
	"chat_id",
	"user_id",
	"title",
	"system_prompt",
	"encrypted",
	"created_at",
}

var chatMessageColumns = []string{
	"message_id",
	"chat_id",
	"role",
	"content",
	"encrypted",
	"created_at",
}

func buildQuery(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertRecordingQuery(r models.Recording) (string, []any, error) {
	return buildQuery(psql.
		Insert(recordingsTable).
		Columns(recordingColumns[:len(recordingColumns)-1]...).
		Values(
			r.RecordingID,
			r.UserID,
			r.ObjectKey,
			r.FileName,
			r.ContentType,
			r.IsEncrypted,
			r.EncryptionIV,
			r.EncryptionSalt,
			r.EncryptedPassword,
			r.Transcript,
			r.TranscriptEncrypted,
			r.TranscriptionStatus,
		).
		Suffix("RETURNING created_at"))
}

func buildGetRecordingQuery(userID int64, recordingID string) (string, []any, error) {
	return buildQuery(psql.
		Select(recordingColumns...).
		From(recordingsTable).
		Where(sq.Eq{"recording_id": recordingID}).
		Where(sq.Eq{"user_id": userID}))
}

func buildDeleteRecordingQuery(userID int64, recordingID string) (string, []any, error) {
	return buildQuery(psql.
		Delete(recordingsTable).
		Where(sq.Eq{"recording_id": recordingID}).
		Where(sq.Eq{"user_id": userID}))
}

func buildSaveTranscriptQuery(recordingID, transcript string, encrypted bool) (string, []any, error) {
	return buildQuery(psql.
		Update(recordingsTable).
		Set("transcript", transcript).
		Set("transcript_encrypted", encrypted).
		Set("transcription_status", models.TranscriptionDone).
		Where(sq.Eq{"recording_id": recordingID}))
}

func buildSetTranscriptionStatusQuery(recordingID string, status models.TranscriptionStatus) (string, []any, error) {
	return buildQuery(psql.
		Update(recordingsTable).
		Set("transcription_status", status).
		Where(sq.Eq{"recording_id": recordingID}))
}

func buildInsertChatQuery(c models.Chat) (string, []any, error) {
	return buildQuery(psql.
		Insert(chatsTable).
		Columns(chatColumns[:len(chatColumns)-1]...).
		Values(c.ChatID, c.UserID, c.Title, c.SystemPrompt, c.Encrypted).
		Suffix("RETURNING created_at"))
}

func buildGetChatQuery(userID int64, chatID string) (string, []any, error) {
	return buildQuery(psql.
		Select(chatColumns...).
		From(chatsTable).
		Where(sq.Eq{"chat_id": chatID}).
		Where(sq.Eq{"user_id": userID}))
}

func buildInsertChatMessageQuery(m models.ChatMessage) (string, []any, error) {
	return buildQuery(psql.
		Insert(chatMessagesTable).
		Columns(chatMessageColumns[:len(chatMessageColumns)-1]...).
		Values(m.MessageID, m.ChatID, m.Role, m.Content, m.Encrypted).
		Suffix("RETURNING created_at"))
}

func buildListChatMessagesQuery(chatID string) (string, []any, error) {
	return buildQuery(psql.
		Select(chatMessageColumns...).
		From(chatMessagesTable).
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("created_at ASC", "message_id ASC"))
}
