package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/notice"
)

type noticeRepository struct {
	db *sqlx.DB
}

var _ notice.Repository = (*noticeRepository)(nil)

func NewNoticeRepository(db *sqlx.DB) notice.Repository {
	return &noticeRepository{db: db}
}

// Columns are aliased to the lowercased field names sqlx maps by default.
func (repo *noticeRepository) CreateNotice(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	n.ID = uuid.NewString()
	_, err := repo.db.ExecContext(ctx, `INSERT INTO notices
		(id, title, description, file_url, file_type, created_by, creator_uid, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.Title, n.Description, n.FileURL, n.FileType, n.CreatedBy, n.CreatorUID, n.Timestamp)
	if err != nil {
		return notice.Notice{}, core.NewStoreError("creating notice", err)
	}
	return n, nil
}

func (repo *noticeRepository) QueryNotices(ctx context.Context) ([]notice.Notice, error) {
	notices := make([]notice.Notice, 0)
	err := repo.db.SelectContext(ctx, &notices, `SELECT id, title, description,
		file_url AS fileurl, file_type AS filetype, created_by AS createdby,
		creator_uid AS creatoruid, "timestamp"
		FROM notices ORDER BY "timestamp" DESC`)
	if err != nil {
		return nil, core.NewStoreError("querying notices", err)
	}
	for i := range notices {
		notices[i].Timestamp = notices[i].Timestamp.UTC()
	}
	return notices, nil
}

func (repo *noticeRepository) CreateMessage(ctx context.Context, m notice.Message) (notice.Message, error) {
	m.ID = uuid.NewString()
	_, err := repo.db.ExecContext(ctx, `INSERT INTO messages (id, text, sender, sender_uid, "timestamp")
		VALUES ($1, $2, $3, $4, $5)`, m.ID, m.Text, m.Sender, m.SenderUID, m.Timestamp)
	if err != nil {
		return notice.Message{}, core.NewStoreError("creating message", err)
	}
	return m, nil
}

func (repo *noticeRepository) QueryMessages(ctx context.Context) ([]notice.Message, error) {
	msgs := make([]notice.Message, 0)
	err := repo.db.SelectContext(ctx, &msgs, `SELECT id, text, sender, sender_uid AS senderuid, "timestamp"
		FROM messages ORDER BY "timestamp"`)
	if err != nil {
		return nil, core.NewStoreError("querying messages", err)
	}
	for i := range msgs {
		msgs[i].Timestamp = msgs[i].Timestamp.UTC()
	}
	return msgs, nil
}
