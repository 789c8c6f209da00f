package firestoredb

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/paatthya/console/core/notice"
)

type (
	noticeDoc struct {
		Title       string    `firestore:"title"`
		Description string    `firestore:"description"`
		FileURL     string    `firestore:"fileUrl"`
		FileType    string    `firestore:"fileType"`
		CreatedBy   string    `firestore:"createdBy"`
		CreatorUID  string    `firestore:"creatorUid"`
		Timestamp   time.Time `firestore:"timestamp"`
	}

	messageDoc struct {
		Text      string    `firestore:"text"`
		Sender    string    `firestore:"sender"`
		SenderUID string    `firestore:"senderUid"`
		Timestamp time.Time `firestore:"timestamp"`
	}
)

type noticeRepository struct {
	client *firestore.Client
}

var _ notice.Repository = (*noticeRepository)(nil)

func NewNoticeRepository(client *firestore.Client) notice.Repository {
	return &noticeRepository{client: client}
}

func (repo *noticeRepository) CreateNotice(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	ref, _, err := repo.client.Collection(noticesCollection).Add(ctx, noticeDoc{
		Title:       n.Title,
		Description: n.Description,
		FileURL:     n.FileURL,
		FileType:    n.FileType,
		CreatedBy:   n.CreatedBy,
		CreatorUID:  n.CreatorUID,
		Timestamp:   n.Timestamp,
	})
	if err != nil {
		return notice.Notice{}, storeError("creating notice", "notice", "", err)
	}
	n.ID = ref.ID
	return n, nil
}

func (repo *noticeRepository) QueryNotices(ctx context.Context) ([]notice.Notice, error) {
	iter := repo.client.Collection(noticesCollection).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	notices := make([]notice.Notice, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError("querying notices", "notices", "", err)
		}
		var doc noticeDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, storeError("decoding notice "+snap.Ref.ID, "notice", snap.Ref.ID, err)
		}
		notices = append(notices, notice.Notice{
			ID:          snap.Ref.ID,
			Title:       doc.Title,
			Description: doc.Description,
			FileURL:     doc.FileURL,
			FileType:    doc.FileType,
			CreatedBy:   doc.CreatedBy,
			CreatorUID:  doc.CreatorUID,
			Timestamp:   doc.Timestamp,
		})
	}
	return notices, nil
}

func (repo *noticeRepository) CreateMessage(ctx context.Context, m notice.Message) (notice.Message, error) {
	ref, _, err := repo.client.Collection(messagesCollection).Add(ctx, messageDoc{
		Text:      m.Text,
		Sender:    m.Sender,
		SenderUID: m.SenderUID,
		Timestamp: m.Timestamp,
	})
	if err != nil {
		return notice.Message{}, storeError("creating message", "message", "", err)
	}
	m.ID = ref.ID
	return m, nil
}

func (repo *noticeRepository) QueryMessages(ctx context.Context) ([]notice.Message, error) {
	iter := repo.client.Collection(messagesCollection).OrderBy("timestamp", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	msgs := make([]notice.Message, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError("querying messages", "messages", "", err)
		}
		var doc messageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, storeError("decoding message "+snap.Ref.ID, "message", snap.Ref.ID, err)
		}
		msgs = append(msgs, notice.Message{
			ID:        snap.Ref.ID,
			Text:      doc.Text,
			Sender:    doc.Sender,
			SenderUID: doc.SenderUID,
			Timestamp: doc.Timestamp,
		})
	}
	return msgs, nil
}
