package service

import (
	"context"

	"github.com/latenitesite/mattermost-mobile/models"
)

// HandleArgs is the input of the single-family entry points.
type HandleArgs struct {
	Values []models.Payload
	// OperationType is the caller's declared intent. It is logged when it
	// disagrees with what is stored, but never decides the outcome.
	OperationType models.OperationType
	// PrepareRowsOnly returns the prepared descriptors without committing
	// them, so the caller can fold them into a larger batch.
	PrepareRowsOnly bool
}

// IsolatedEntityArgs is the input of [DataOperator.HandleIsolatedEntity].
type IsolatedEntityArgs struct {
	TableName     models.TableName
	OperationType models.OperationType
	Values        []models.Payload
}

// ReactionsArgs is the input of [DataOperator.HandleReactions].
type ReactionsArgs struct {
	Reactions       []models.Payload
	PrepareRowsOnly bool
}

// PostsArgs is the input of [DataOperator.HandlePosts].
type PostsArgs struct {
	Posts []models.Payload
	// Order lists the ids of the posts that form a contiguous page of a
	// channel. Only those posts are linked and extend the channel range.
	Order []string
	// PreviousPostID is linked as the predecessor of the oldest ordered post.
	PreviousPostID  string
	PrepareRowsOnly bool
}

// DataOperator reconciles payloads with stored rows and commits the
// resulting descriptors. Every Handle* method that commits does so exactly
// once, through a single database handle: either all rows of the call land
// or none do.
type DataOperator interface {
	// Prepare turns values of table into descriptors: stored keys become
	// updates and absent keys become creates.
	Prepare(ctx context.Context, table models.TableName, declared models.OperationType, values []models.Payload) ([]models.Descriptor, error)

	// BatchOperations commits descriptors of one database atomically.
	BatchOperations(ctx context.Context, descriptors []models.Descriptor) (models.CommitResult, error)

	// HandleIsolatedEntity prepares and commits values of a table whose rows
	// do not depend on other tables (App, Global, Servers, CustomEmoji, Role,
	// System, TermsOfService).
	HandleIsolatedEntity(ctx context.Context, args IsolatedEntityArgs) error

	// HandleEntity prepares and, unless PrepareRowsOnly is set, commits
	// values of any registered table.
	HandleEntity(ctx context.Context, table models.TableName, args HandleArgs) ([]models.Descriptor, error)

	HandleUsers(ctx context.Context, args HandleArgs) ([]models.Descriptor, error)
	HandlePreferences(ctx context.Context, args HandleArgs) ([]models.Descriptor, error)
	HandleTeamMemberships(ctx context.Context, args HandleArgs) ([]models.Descriptor, error)
	HandleChannelMemberships(ctx context.Context, args HandleArgs) ([]models.Descriptor, error)
	HandleGroupMemberships(ctx context.Context, args HandleArgs) ([]models.Descriptor, error)
	HandleDrafts(ctx context.Context, args HandleArgs) ([]models.Descriptor, error)

	// HandleReactions writes reactions together with the custom emoji they
	// reference.
	HandleReactions(ctx context.Context, args ReactionsArgs) ([]models.Descriptor, error)

	// HandlePosts writes posts and everything split off their metadata:
	// files, reactions, emoji, embeds and images, plus the channel and
	// thread ranges the posts cover.
	HandlePosts(ctx context.Context, args PostsArgs) ([]models.Descriptor, error)
}
