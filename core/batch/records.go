package batch

import "encoding/json"

// Stored record field names. Companion apps read the same documents,
// these must not change.
const (
	fieldID = "id"

	fieldLectureName   = "lectureName"
	fieldLectureDetail = "lectureDetail"
	fieldLectureLink   = "lectureLink"
	fieldIsYTVideo     = "isYTVideo"

	fieldNotesName = "notesName"
	fieldNotesLink = "notesLink"

	fieldAssignmentName = "assignmentName"
	fieldAssignmentLink = "assignmentLink"

	fieldDateTimeStamp = "dateTimeStamp"
)

const (
	FileTypeVideo = "video"
	FileTypePDF   = "pdf"
)

// Record is one stored material as found in a batch document array.
// It is kept as a map so that fields written by other clients survive an edit.
type Record map[string]interface{}

func (r Record) str(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

func (r Record) boolean(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// ID returns the persisted identifier, if any.
func (r Record) ID() string { return r.str(fieldID) }

// DateTimeStamp returns the creation date (YYYY-MM-DD).
func (r Record) DateTimeStamp() string { return r.str(fieldDateTimeStamp) }

// rawKey holds an array item that is not an object. Stored field names never contain NUL.
const rawKey = "\x00raw"

// RawRecord wraps an array item that is not an object (null, a string, ...) so that it
// keeps its position and is written back unchanged.
func RawRecord(v interface{}) Record { return Record{rawKey: v} }

// Raw returns the item wrapped by RawRecord.
func (r Record) Raw() (interface{}, bool) {
	v, ok := r[rawKey]
	return v, ok && len(r) == 1
}

func (r Record) MarshalJSON() ([]byte, error) {
	if v, ok := r.Raw(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(map[string]interface{}(r))
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if m, ok := v.(map[string]interface{}); ok {
		*r = m
	} else {
		*r = RawRecord(v)
	}
	return nil
}

func (r Record) clone() Record {
	c := make(Record, len(r)+2)
	for k, v := range r {
		c[k] = v
	}
	return c
}

// LectureRecord is the stored shape of a lecture.
type LectureRecord struct {
	LectureName   string `json:"lectureName"`
	LectureDetail string `json:"lectureDetail"`
	LectureLink   string `json:"lectureLink"`
	DateTimeStamp string `json:"dateTimeStamp"`
	IsYTVideo     bool   `json:"isYTVideo"`
}

func (lr LectureRecord) Record() Record {
	return Record{
		fieldLectureName:   lr.LectureName,
		fieldLectureDetail: lr.LectureDetail,
		fieldLectureLink:   lr.LectureLink,
		fieldDateTimeStamp: lr.DateTimeStamp,
		fieldIsYTVideo:     lr.IsYTVideo,
	}
}

func (r Record) Lecture() LectureRecord {
	return LectureRecord{
		LectureName:   r.str(fieldLectureName),
		LectureDetail: r.str(fieldLectureDetail),
		LectureLink:   r.str(fieldLectureLink),
		DateTimeStamp: r.str(fieldDateTimeStamp),
		IsYTVideo:     r.boolean(fieldIsYTVideo),
	}
}

// NoteRecord is the stored shape of a note.
type NoteRecord struct {
	NotesName     string `json:"notesName"`
	NotesLink     string `json:"notesLink"`
	DateTimeStamp string `json:"dateTimeStamp"`
}

func (nr NoteRecord) Record() Record {
	return Record{
		fieldNotesName:     nr.NotesName,
		fieldNotesLink:     nr.NotesLink,
		fieldDateTimeStamp: nr.DateTimeStamp,
	}
}

func (r Record) Note() NoteRecord {
	return NoteRecord{
		NotesName:     r.str(fieldNotesName),
		NotesLink:     r.str(fieldNotesLink),
		DateTimeStamp: r.str(fieldDateTimeStamp),
	}
}

// AssignmentRecord is the stored shape of an assignment.
type AssignmentRecord struct {
	AssignmentName string `json:"assignmentName"`
	AssignmentLink string `json:"assignmentLink"`
	DateTimeStamp  string `json:"dateTimeStamp"`
}

func (ar AssignmentRecord) Record() Record {
	return Record{
		fieldAssignmentName: ar.AssignmentName,
		fieldAssignmentLink: ar.AssignmentLink,
		fieldDateTimeStamp:  ar.DateTimeStamp,
	}
}

func (r Record) Assignment() AssignmentRecord {
	return AssignmentRecord{
		AssignmentName: r.str(fieldAssignmentName),
		AssignmentLink: r.str(fieldAssignmentLink),
		DateTimeStamp:  r.str(fieldDateTimeStamp),
	}
}

// MaterialView is the uniform display projection of a stored record. It is never persisted.
type MaterialView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
	FileType    string `json:"fileType"`
	IsYTVideo   bool   `json:"isYTVideo"`
}

// MaterialInput holds the editable fields of a material.
type MaterialInput struct {
	Title       string `json:"title"`
	Description string `json:"description"` // lectures only
	URL         string `json:"url"`
}

// view maps the record at position pos of kind to its MaterialView.
func view(kind Kind, pos int, rec Record, idFunc IDFunc) MaterialView {
	id := rec.ID()
	if id == "" {
		id = idFunc(kind, pos, rec)
	}

	switch kind {
	case Lectures:
		lr := rec.Lecture()
		url := lr.LectureLink
		if lr.IsYTVideo {
			url = EmbedURL(lr.LectureLink)
		}
		return MaterialView{
			ID:          id,
			Title:       lr.LectureName,
			Description: lr.LectureDetail,
			URL:         url,
			CreatedAt:   lr.DateTimeStamp,
			FileType:    FileTypeVideo,
			IsYTVideo:   lr.IsYTVideo,
		}
	case Notes:
		nr := rec.Note()
		return MaterialView{
			ID:        id,
			Title:     nr.NotesName,
			URL:       nr.NotesLink,
			CreatedAt: nr.DateTimeStamp,
			FileType:  FileTypePDF,
		}
	default:
		ar := rec.Assignment()
		return MaterialView{
			ID:        id,
			Title:     ar.AssignmentName,
			URL:       ar.AssignmentLink,
			CreatedAt: ar.DateTimeStamp,
			FileType:  FileTypePDF,
		}
	}
}

// newRecord builds the stored record of a new material.
func newRecord(kind Kind, in MaterialInput, today string) Record {
	switch kind {
	case Lectures:
		link, isYT := LectureLink(in.URL)
		return LectureRecord{
			LectureName:   in.Title,
			LectureDetail: in.Description,
			LectureLink:   link,
			DateTimeStamp: today,
			IsYTVideo:     isYT,
		}.Record()
	case Notes:
		return NoteRecord{NotesName: in.Title, NotesLink: in.URL, DateTimeStamp: today}.Record()
	default:
		return AssignmentRecord{AssignmentName: in.Title, AssignmentLink: in.URL, DateTimeStamp: today}.Record()
	}
}

// overlay applies an edit on a copy of rec. dateTimeStamp and unknown fields are kept.
func overlay(kind Kind, rec Record, in MaterialInput) Record {
	updated := make(Record, 4)
	if _, raw := rec.Raw(); !raw {
		updated = rec.clone()
	}
	switch kind {
	case Lectures:
		link, isYT := LectureLink(in.URL)
		updated[fieldLectureName] = in.Title
		updated[fieldLectureDetail] = in.Description
		updated[fieldLectureLink] = link
		updated[fieldIsYTVideo] = isYT
	case Notes:
		updated[fieldNotesName] = in.Title
		updated[fieldNotesLink] = in.URL
	default:
		updated[fieldAssignmentName] = in.Title
		updated[fieldAssignmentLink] = in.URL
	}
	return updated
}
