// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TableName identifies an entity family and the storage table that holds it.
type TableName string

// Default database tables.
const (
	TableApp     TableName = "App"
	TableGlobal  TableName = "Global"
	TableServers TableName = "Servers"
)

// Server database tables.
const (
	TableRole              TableName = "Role"
	TableSystem            TableName = "System"
	TableTermsOfService    TableName = "TermsOfService"
	TablePost              TableName = "Post"
	TablePostsInThread     TableName = "PostsInThread"
	TableReaction          TableName = "Reaction"
	TableFile              TableName = "File"
	TablePostMetadata      TableName = "PostMetadata"
	TableDraft             TableName = "Draft"
	TablePostsInChannel    TableName = "PostsInChannel"
	TableUser              TableName = "User"
	TablePreference        TableName = "Preference"
	TableTeamMembership    TableName = "TeamMembership"
	TableCustomEmoji       TableName = "CustomEmoji"
	TableGroupMembership   TableName = "GroupMembership"
	TableChannelMembership TableName = "ChannelMembership"
)

// String returns the table name as stored in descriptors and logs.
func (t TableName) String() string {
	return string(t)
}

// Scope tells which database serves a table: the single default database
// shared by all servers, or the database of the active server.
type Scope int

const (
	ScopeDefault Scope = iota + 1
	ScopeServer
)

func (s Scope) String() string {
	switch s {
	case ScopeDefault:
		return "default"
	case ScopeServer:
		return "server"
	default:
		return "unknown"
	}
}
