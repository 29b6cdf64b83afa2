package core

// errors.go maps technical errors to user-facing messages with support
// codes. When a run fails, the user can quote the code when asking for
// help instead of pasting a stack of wrapped errors.
//
//	FILE001 - Database file not found
//	FILE002 - Database file is not a valid Asphyxia database
//	FILE003 - Database file is locked by another process
//	OUT001  - Output file could not be written
//	ERR000  - Fallback for anything unexpected

import (
	"errors"
	"fmt"

	"github.com/asphyxia-tools/tachi-export/internal/asphyxia"
	"github.com/asphyxia-tools/tachi-export/internal/export"
)

// UserMessage is a user-friendly rendering of a run-fatal error.
type UserMessage struct {
	Message string // What went wrong, in plain language
	Action  string // What the user should do about it
	Code    string // Support reference code
}

// String formats the message for terminal output.
func (m UserMessage) String() string {
	return fmt.Sprintf("%s [%s]: %s", m.Message, m.Code, m.Action)
}

// errorMappings pairs sentinel errors with their user messages, checked in
// order with errors.Is.
var errorMappings = []struct {
	target error
	msg    UserMessage
}{
	{
		target: asphyxia.ErrNotFound,
		msg: UserMessage{
			Message: "Asphyxia database file not found",
			Action:  "Check ASPHYXIA_DB_PATH points at the plugin's .db file",
			Code:    "FILE001",
		},
	},
	{
		target: asphyxia.ErrMalformed,
		msg: UserMessage{
			Message: "File is not a valid Asphyxia database",
			Action:  "Verify the path points at the SDVX plugin database, not another file",
			Code:    "FILE002",
		},
	},
	{
		target: asphyxia.ErrLocked,
		msg: UserMessage{
			Message: "Database file is in use by another process",
			Action:  "Close the game or Asphyxia and run the export again",
			Code:    "FILE003",
		},
	},
	{
		target: export.ErrWrite,
		msg: UserMessage{
			Message: "Output file could not be written",
			Action:  "Check OUTPUT_FILE is writable and the disk is not full",
			Code:    "OUT001",
		},
	},
}

// defaultMessage is returned when no sentinel matches (ERR000). The log
// carries the original technical error.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts a run-fatal error to a user-facing message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, em := range errorMappings {
		if errors.Is(err, em.target) {
			return em.msg
		}
	}
	return defaultMessage
}
