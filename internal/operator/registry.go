// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package operator

import (
	"slices"

	"github.com/latenitesite/mattermost-mobile/models"
)

// TableDescriptor is the static metadata of one entity family.
type TableDescriptor struct {
	Name  models.TableName
	Scope models.Scope
	Keys  []KeyField
	// Isolated tables may be written through the isolated entity handler:
	// their rows do not depend on rows of other tables.
	Isolated bool
	Operate  Operator
}

var registry = buildRegistry()

func buildRegistry() map[models.TableName]TableDescriptor {
	entries := []TableDescriptor{
		{Name: models.TableApp, Scope: models.ScopeDefault, Isolated: true, Operate: OperateAppRecord},
		{Name: models.TableGlobal, Scope: models.ScopeDefault, Isolated: true, Operate: OperateGlobalRecord},
		{Name: models.TableServers, Scope: models.ScopeDefault, Isolated: true, Operate: OperateServersRecord},
		{Name: models.TableCustomEmoji, Scope: models.ScopeServer, Isolated: true, Operate: OperateCustomEmojiRecord},
		{Name: models.TableRole, Scope: models.ScopeServer, Isolated: true, Operate: OperateRoleRecord},
		{Name: models.TableSystem, Scope: models.ScopeServer, Isolated: true, Operate: OperateSystemRecord},
		{Name: models.TableTermsOfService, Scope: models.ScopeServer, Isolated: true, Operate: OperateTermsOfServiceRecord},
		{Name: models.TablePost, Scope: models.ScopeServer, Operate: OperatePostRecord},
		{Name: models.TablePostsInThread, Scope: models.ScopeServer, Operate: OperatePostInThreadRecord},
		{Name: models.TableReaction, Scope: models.ScopeServer, Operate: OperateReactionRecord},
		{Name: models.TableFile, Scope: models.ScopeServer, Operate: OperateFileRecord},
		{Name: models.TablePostMetadata, Scope: models.ScopeServer, Operate: OperatePostMetadataRecord},
		{Name: models.TableDraft, Scope: models.ScopeServer, Operate: OperateDraftRecord},
		{Name: models.TablePostsInChannel, Scope: models.ScopeServer, Operate: OperatePostsInChannelRecord},
		{Name: models.TableUser, Scope: models.ScopeServer, Operate: OperateUserRecord},
		{Name: models.TablePreference, Scope: models.ScopeServer, Operate: OperatePreferenceRecord},
		{Name: models.TableTeamMembership, Scope: models.ScopeServer, Operate: OperateTeamMembershipRecord},
		{Name: models.TableGroupMembership, Scope: models.ScopeServer, Operate: OperateGroupMembershipRecord},
		{Name: models.TableChannelMembership, Scope: models.ScopeServer, Operate: OperateChannelMembershipRecord},
	}

	reg := make(map[models.TableName]TableDescriptor, len(entries))
	for _, e := range entries {
		e.Keys = tableKeys[e.Name]
		reg[e.Name] = e
	}
	return reg
}

// Lookup returns the descriptor registered for table.
func Lookup(table models.TableName) (TableDescriptor, bool) {
	d, ok := registry[table]
	return d, ok
}

// Tables returns every registered table name, sorted.
func Tables() []models.TableName {
	names := make([]models.TableName, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
