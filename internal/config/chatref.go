package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ChatRef is the canonical form of a chat identifier. Operators may supply a
// public handle ("@archive"), a bare numeric id ("1234567"), or the signed
// supergroup/channel form Telegram uses ("-1001234567890"); all three parse
// into exactly one of the two fields below.
type ChatRef struct {
	Username string
	ID       int64
}

// ByUsername reports whether the reference addresses the chat by handle.
func (r ChatRef) ByUsername() bool {
	return r.Username != ""
}

func (r ChatRef) String() string {
	if r.Username != "" {
		return r.Username
	}
	return strconv.FormatInt(r.ID, 10)
}

// ParseChatRef normalizes the accepted identifier forms once at startup so no
// per-request parsing is needed. Anything that is neither an @handle nor an
// integer is rejected.
func ParseChatRef(raw string) (ChatRef, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ChatRef{}, fmt.Errorf("chat identifier is empty")
	}
	if strings.HasPrefix(value, "@") {
		if len(value) == 1 {
			return ChatRef{}, fmt.Errorf("chat handle %q has no name", raw)
		}
		return ChatRef{Username: value}, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return ChatRef{}, fmt.Errorf("chat identifier %q is neither an @handle nor a numeric id", raw)
	}
	return ChatRef{ID: id}, nil
}
