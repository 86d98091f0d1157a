package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/latenitesite/mattermost-mobile/models"
)

// maxKeysPerQuery keeps IN lists below SQLite's host parameter limit.
const maxKeysPerQuery = 500

var rowColumns = []string{"record_key", "record_id", "data", "created_at", "updated_at"}

var sqlite = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var storageTables = map[models.TableName]string{
	models.TableApp:               "app",
	models.TableGlobal:            "global",
	models.TableServers:           "servers",
	models.TableRole:              "role",
	models.TableSystem:            "system",
	models.TableTermsOfService:    "terms_of_service",
	models.TablePost:              "post",
	models.TablePostsInThread:     "posts_in_thread",
	models.TableReaction:          "reaction",
	models.TableFile:              "file",
	models.TablePostMetadata:      "post_metadata",
	models.TableDraft:             "draft",
	models.TablePostsInChannel:    "posts_in_channel",
	models.TableUser:              "user",
	models.TablePreference:        "preference",
	models.TableTeamMembership:    "team_membership",
	models.TableCustomEmoji:       "custom_emoji",
	models.TableGroupMembership:   "group_membership",
	models.TableChannelMembership: "channel_membership",
}

// storageTable returns the quoted SQL identifier of table.
func storageTable(table models.TableName) (string, error) {
	name, ok := storageTables[table]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTableNotMapped, table)
	}
	return `"` + name + `"`, nil
}

func buildSelectRowsByKeysQuery(table models.TableName, keys []string) (string, []any, error) {
	from, err := storageTable(table)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sqlite.
		Select(rowColumns...).
		From(from).
		Where(squirrel.Eq{"record_key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertRowQuery(table models.TableName, key, id string, data []byte, now int64) (string, []any, error) {
	into, err := storageTable(table)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sqlite.
		Insert(into).
		Columns(rowColumns...).
		Values(key, id, string(data), now, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateRowQuery(table models.TableName, key string, data []byte, now int64) (string, []any, error) {
	target, err := storageTable(table)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sqlite.
		Update(target).
		Set("data", string(data)).
		Set("updated_at", now).
		Where(squirrel.Eq{"record_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// chunkKeys splits keys into slices of at most size elements.
func chunkKeys(keys []string, size int) [][]string {
	chunks := make([][]string, 0, len(keys)/size+1)
	for len(keys) > size {
		chunks = append(chunks, keys[:size])
		keys = keys[size:]
	}
	if len(keys) > 0 {
		chunks = append(chunks, keys)
	}
	return chunks
}
