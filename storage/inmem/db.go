package inmemdb

import (
	"sync"

	"github.com/paatthya/console/core/admin"
	"github.com/paatthya/console/core/batch"
	"github.com/paatthya/console/core/notice"
)

type (
	DB struct {
		batch   *batchTable
		admin   *adminTable
		notice  *noticeTable
		message *messageTable
	}

	batchTable struct {
		table map[string]*batch.Batch
		order []string // insertion order
		mutex sync.RWMutex
	}

	adminTable struct {
		table map[string]*admin.Admin
		mutex sync.RWMutex
	}

	noticeTable struct {
		rows  []notice.Notice
		mutex sync.RWMutex
	}

	messageTable struct {
		rows  []notice.Message
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		batch:   &batchTable{table: make(map[string]*batch.Batch)},
		admin:   &adminTable{table: make(map[string]*admin.Admin)},
		notice:  &noticeTable{},
		message: &messageTable{},
	}
}
