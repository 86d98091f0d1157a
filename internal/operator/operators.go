// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package operator

import "github.com/latenitesite/mattermost-mobile/models"

var (
	appSpec = recordSpec[models.App]{
		table:     models.TableApp,
		newRecord: func() *models.App { return &models.App{} },
	}
	globalSpec = recordSpec[models.Global]{
		table:     models.TableGlobal,
		newRecord: func() *models.Global { return &models.Global{} },
	}
	serversSpec = recordSpec[models.Servers]{
		table:     models.TableServers,
		newRecord: func() *models.Servers { return &models.Servers{} },
	}
	roleSpec = recordSpec[models.Role]{
		table:            models.TableRole,
		requiredOnCreate: []string{"name"},
		newRecord:        func() *models.Role { return &models.Role{Permissions: []string{}} },
	}
	systemSpec = recordSpec[models.System]{
		table:            models.TableSystem,
		requiredOnCreate: []string{"name"},
		newRecord:        func() *models.System { return &models.System{} },
	}
	termsOfServiceSpec = recordSpec[models.TermsOfService]{
		table:     models.TableTermsOfService,
		newRecord: func() *models.TermsOfService { return &models.TermsOfService{} },
	}
	postSpec = recordSpec[models.Post]{
		table:            models.TablePost,
		requiredOnCreate: []string{"channel_id", "user_id"},
		newRecord:        func() *models.Post { return &models.Post{Props: map[string]any{}} },
	}
	postsInThreadSpec = recordSpec[models.PostsInThread]{
		table:     models.TablePostsInThread,
		newRecord: func() *models.PostsInThread { return &models.PostsInThread{} },
		merge: func(next, prev *models.PostsInThread) {
			widen(&next.Earliest, &next.Latest, prev.Earliest, prev.Latest)
		},
	}
	reactionSpec = recordSpec[models.Reaction]{
		table:     models.TableReaction,
		newRecord: func() *models.Reaction { return &models.Reaction{} },
	}
	fileSpec = recordSpec[models.File]{
		table:            models.TableFile,
		requiredOnCreate: []string{"post_id"},
		newRecord:        func() *models.File { return &models.File{} },
	}
	postMetadataSpec = recordSpec[models.PostMetadata]{
		table:     models.TablePostMetadata,
		newRecord: func() *models.PostMetadata { return &models.PostMetadata{} },
	}
	draftSpec = recordSpec[models.Draft]{
		table:     models.TableDraft,
		newRecord: func() *models.Draft { return &models.Draft{Files: []any{}} },
	}
	postsInChannelSpec = recordSpec[models.PostsInChannel]{
		table:     models.TablePostsInChannel,
		newRecord: func() *models.PostsInChannel { return &models.PostsInChannel{} },
		merge: func(next, prev *models.PostsInChannel) {
			widen(&next.Earliest, &next.Latest, prev.Earliest, prev.Latest)
		},
	}
	userSpec = recordSpec[models.User]{
		table:            models.TableUser,
		requiredOnCreate: []string{"username"},
		newRecord: func() *models.User {
			return &models.User{
				Props:       map[string]any{},
				NotifyProps: map[string]any{},
				Timezone:    map[string]any{},
			}
		},
	}
	preferenceSpec = recordSpec[models.Preference]{
		table:     models.TablePreference,
		newRecord: func() *models.Preference { return &models.Preference{} },
	}
	teamMembershipSpec = recordSpec[models.TeamMembership]{
		table:     models.TableTeamMembership,
		newRecord: func() *models.TeamMembership { return &models.TeamMembership{} },
	}
	customEmojiSpec = recordSpec[models.CustomEmoji]{
		table:     models.TableCustomEmoji,
		newRecord: func() *models.CustomEmoji { return &models.CustomEmoji{} },
	}
	groupMembershipSpec = recordSpec[models.GroupMembership]{
		table:     models.TableGroupMembership,
		newRecord: func() *models.GroupMembership { return &models.GroupMembership{} },
	}
	channelMembershipSpec = recordSpec[models.ChannelMembership]{
		table:     models.TableChannelMembership,
		newRecord: func() *models.ChannelMembership { return &models.ChannelMembership{NotifyProps: map[string]any{}} },
	}
)

func OperateAppRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return appSpec.operate(value, existing)
}

func OperateGlobalRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return globalSpec.operate(value, existing)
}

func OperateServersRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return serversSpec.operate(value, existing)
}

func OperateRoleRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return roleSpec.operate(value, existing)
}

func OperateSystemRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return systemSpec.operate(value, existing)
}

func OperateTermsOfServiceRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return termsOfServiceSpec.operate(value, existing)
}

func OperatePostRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return postSpec.operate(value, existing)
}

// OperatePostInThreadRecord widens the stored reply range on update.
func OperatePostInThreadRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return postsInThreadSpec.operate(value, existing)
}

func OperateReactionRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return reactionSpec.operate(value, existing)
}

func OperateFileRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return fileSpec.operate(value, existing)
}

func OperatePostMetadataRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return postMetadataSpec.operate(value, existing)
}

func OperateDraftRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return draftSpec.operate(value, existing)
}

// OperatePostsInChannelRecord widens the stored channel range on update.
func OperatePostsInChannelRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return postsInChannelSpec.operate(value, existing)
}

func OperateUserRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return userSpec.operate(value, existing)
}

func OperatePreferenceRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return preferenceSpec.operate(value, existing)
}

func OperateTeamMembershipRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return teamMembershipSpec.operate(value, existing)
}

func OperateCustomEmojiRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return customEmojiSpec.operate(value, existing)
}

func OperateGroupMembershipRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return groupMembershipSpec.operate(value, existing)
}

func OperateChannelMembershipRecord(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	return channelMembershipSpec.operate(value, existing)
}
