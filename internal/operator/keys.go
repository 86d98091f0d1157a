package operator

import (
	"fmt"
	"strings"

	"github.com/latenitesite/mattermost-mobile/models"
)

// KeySeparator joins the parts of a composite key.
const KeySeparator = "\x1f"

// KeyField is one payload field that makes up a table's business key.
type KeyField struct {
	Name string
	// Optional key parts may be absent; they contribute an empty string.
	Optional bool
}

var (
	idKey = []KeyField{{Name: "id"}}

	tableKeys = map[models.TableName][]KeyField{
		models.TableApp:               idKey,
		models.TableGlobal:            idKey,
		models.TableServers:           idKey,
		models.TableRole:              idKey,
		models.TableSystem:            idKey,
		models.TableTermsOfService:    idKey,
		models.TablePost:              idKey,
		models.TableFile:              idKey,
		models.TableUser:              idKey,
		models.TableCustomEmoji:       {{Name: "name"}},
		models.TablePostsInThread:     {{Name: "post_id"}},
		models.TablePostsInChannel:    {{Name: "channel_id"}},
		models.TablePostMetadata:      {{Name: "postId"}, {Name: "type"}},
		models.TableDraft:             {{Name: "channel_id"}, {Name: "root_id", Optional: true}},
		models.TableReaction:          {{Name: "post_id"}, {Name: "user_id"}, {Name: "emoji_name", Optional: true}},
		models.TablePreference:        {{Name: "user_id"}, {Name: "category"}, {Name: "name"}},
		models.TableTeamMembership:    {{Name: "team_id"}, {Name: "user_id"}},
		models.TableChannelMembership: {{Name: "channel_id"}, {Name: "user_id"}},
		models.TableGroupMembership:   {{Name: "group_id"}, {Name: "user_id"}},
	}
)

// JoinKey builds a composite key from its parts in key-field order.
func JoinKey(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// KeyOf derives the business key of value for table.
func KeyOf(table models.TableName, value models.Payload) (string, error) {
	fields, ok := tableKeys[table]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoKeyFields, table)
	}
	return deriveKey(table, fields, value)
}

func deriveKey(table models.TableName, fields []KeyField, value models.Payload) (string, error) {
	if value == nil {
		return "", newValidationError(table, "", "payload is empty")
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		raw, present := value[f.Name]
		if !present || raw == nil {
			if f.Optional {
				parts = append(parts, "")
				continue
			}
			return "", newValidationError(table, f.Name, "key field is missing")
		}

		s, isString := raw.(string)
		if !isString {
			return "", newValidationError(table, f.Name, fmt.Sprintf("key field must be a string, got %T", raw))
		}
		if s == "" && !f.Optional {
			return "", newValidationError(table, f.Name, "key field is empty")
		}
		if strings.Contains(s, KeySeparator) {
			return "", newValidationError(table, f.Name, "key field contains the key separator")
		}
		parts = append(parts, s)
	}

	return JoinKey(parts...), nil
}

func isIDKeyed(fields []KeyField) bool {
	return len(fields) == 1 && fields[0].Name == "id"
}
