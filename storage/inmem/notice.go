package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/paatthya/console/core/notice"
)

type noticeRepository struct {
	notices  *noticeTable
	messages *messageTable
}

var _ notice.Repository = (*noticeRepository)(nil)

func NewNoticeRepository(db *DB) notice.Repository {
	return &noticeRepository{notices: db.notice, messages: db.message}
}

func (repo *noticeRepository) CreateNotice(_ context.Context, n notice.Notice) (notice.Notice, error) {
	repo.notices.mutex.Lock()
	defer repo.notices.mutex.Unlock()

	n.ID = uuid.NewString()
	repo.notices.rows = append(repo.notices.rows, n)
	return n, nil
}

func (repo *noticeRepository) QueryNotices(_ context.Context) ([]notice.Notice, error) {
	repo.notices.mutex.RLock()
	defer repo.notices.mutex.RUnlock()

	notices := make([]notice.Notice, len(repo.notices.rows))
	copy(notices, repo.notices.rows)
	sort.SliceStable(notices, func(i, j int) bool { return notices[i].Timestamp.After(notices[j].Timestamp) })
	return notices, nil
}

func (repo *noticeRepository) CreateMessage(_ context.Context, m notice.Message) (notice.Message, error) {
	repo.messages.mutex.Lock()
	defer repo.messages.mutex.Unlock()

	m.ID = uuid.NewString()
	repo.messages.rows = append(repo.messages.rows, m)
	return m, nil
}

func (repo *noticeRepository) QueryMessages(_ context.Context) ([]notice.Message, error) {
	repo.messages.mutex.RLock()
	defer repo.messages.mutex.RUnlock()

	msgs := make([]notice.Message, len(repo.messages.rows))
	copy(msgs, repo.messages.rows)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	return msgs, nil
}
