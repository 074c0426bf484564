package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// StringList is a list-valued column stored as JSON text. Malformed stored
// content decodes to an empty list and is logged, never an error.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("stringlist: unsupported source type %T", src)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("raw", string(raw)).Msg("stringlist: malformed JSON column, falling back to empty list")
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}

func (StringList) GormDataType() string { return "text" }
