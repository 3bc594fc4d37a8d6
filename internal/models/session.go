package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/uptrace/bun"
)

var sessionDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Session is one subject's one-day recording event. Sessions are
// append-only: ingestion never updates or deletes a recorded session.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:se"`

	ID                 int64     `bun:"id,pk,autoincrement" json:"id"`
	SessionDate        string    `bun:"session_date,unique:session_date_monkey,notnull" json:"session_date"`
	MonkeyID           int64     `bun:"monkey_id,unique:session_date_monkey,notnull" json:"monkey_id"`
	RigID              int64     `bun:"rig_id,notnull" json:"rig_id"`
	TaskID             int64     `bun:"task_id,notnull" json:"task_id"`
	Problem            bool      `bun:"problem,notnull,default:false" json:"problem"`
	ProblemDescription *string   `bun:"problem_description" json:"problem_description,omitempty"`
	CreatedAt          time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`

	Monkey   *Monkey            `bun:"rel:belongs-to,join:monkey_id=id" json:"monkey,omitempty"`
	Rig      *Rig               `bun:"rel:belongs-to,join:rig_id=id" json:"rig,omitempty"`
	Task     *Task              `bun:"rel:belongs-to,join:task_id=id" json:"task,omitempty"`
	Hardware []*SessionHardware `bun:"rel:has-many,join:id=session_id" json:"hardware,omitempty"`
	Users    []*SessionUser     `bun:"rel:has-many,join:id=session_id" json:"users,omitempty"`
	Notes    []*SessionNote     `bun:"rel:has-many,join:id=session_id" json:"notes,omitempty"`
}

// Validate checks that required session fields are present.
func (s *Session) Validate() error {
	if !sessionDateRe.MatchString(s.SessionDate) {
		return errors.New("session date must be formatted YYYY-MM-DD")
	}
	if s.MonkeyID == 0 {
		return errors.New("monkey is required")
	}
	if s.RigID == 0 {
		return errors.New("rig is required")
	}
	if s.TaskID == 0 {
		return errors.New("task is required")
	}
	return nil
}

// SessionHardware associates a session with a piece of equipment used
// during the recording.
type SessionHardware struct {
	bun.BaseModel `bun:"table:session_hardware,alias:sh"`

	ID         int64 `bun:"id,pk,autoincrement" json:"id"`
	SessionID  int64 `bun:"session_id,unique:session_hardware_pair,notnull" json:"session_id"`
	HardwareID int64 `bun:"hardware_id,unique:session_hardware_pair,notnull" json:"hardware_id"`

	Hardware *Hardware `bun:"rel:belongs-to,join:hardware_id=id" json:"hardware,omitempty"`
}

// SessionUser associates a lab member with a session.
type SessionUser struct {
	bun.BaseModel `bun:"table:session_users,alias:su"`

	ID        int64 `bun:"id,pk,autoincrement" json:"id"`
	SessionID int64 `bun:"session_id,unique:session_user_pair,notnull" json:"session_id"`
	UserID    int64 `bun:"user_id,unique:session_user_pair,notnull" json:"user_id"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}

// SessionNote is a numbered free-text note attached to a session.
// Note 0 is the notes file found next to the raw data.
type SessionNote struct {
	bun.BaseModel `bun:"table:session_notes,alias:sn"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	SessionID int64     `bun:"session_id,unique:session_note_number,notnull" json:"session_id"`
	NoteID    int       `bun:"note_id,unique:session_note_number,notnull" json:"note_id"`
	Note      string    `bun:"note,notnull" json:"note"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
