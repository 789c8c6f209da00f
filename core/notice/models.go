package notice

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/paatthya/console/core"
)

// Notice is an announcement posted on the board.
type Notice struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"fileUrl"`
	FileType    string    `json:"fileType"`
	CreatedBy   string    `json:"createdBy"`
	CreatorUID  string    `json:"creatorUid"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewNotice contains information needed to post a Notice.
type NewNotice struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	FileURL     string `json:"fileUrl" validate:"omitempty,url"`
	FileType    string `json:"fileType" validate:"omitempty,oneof=pdf doc xls ppt jpg png"`
}

func (nn *NewNotice) Validate(validate *validator.Validate) error {
	nn.Title = core.CleanString(nn.Title)
	nn.Description = core.CleanString(nn.Description)
	nn.FileURL = core.CleanString(nn.FileURL)
	nn.FileType = core.CleanString(nn.FileType, true /* lower */)
	return validate.Struct(nn)
}

// Message is a chat message exchanged between admins.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	SenderUID string    `json:"senderUid"`
	Timestamp time.Time `json:"timestamp"`
}

// IsFrom reports whether usr sent m.
func (m Message) IsFrom(usr core.CurrentUser) bool {
	return m.SenderUID == usr.UID()
}

type NewMessage struct {
	Text string `json:"text" validate:"notblank"`
}

func (nm *NewMessage) Validate(validate *validator.Validate) error {
	nm.Text = core.CleanString(nm.Text)
	return validate.Struct(nm)
}
