package service

import (
	"context"

	"github.com/latenitesite/mattermost-mobile/internal/store"
	"github.com/latenitesite/mattermost-mobile/models"
)

func (o *dataOperator) HandleReactions(ctx context.Context, args ReactionsArgs) ([]models.Descriptor, error) {
	if len(args.Reactions) == 0 {
		return nil, nil
	}

	db, err := o.database(ctx, models.ScopeServer)
	if err != nil {
		return nil, err
	}

	descriptors, err := o.prepareReactions(ctx, db, args.Reactions, nil)
	if err != nil {
		return nil, err
	}
	if args.PrepareRowsOnly {
		return descriptors, nil
	}

	if _, err = o.commit(ctx, db, models.ScopeServer, descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

// prepareReactions prepares reactions and the custom emoji they name. extra
// emoji values are prepared in the same emoji sub-batch.
func (o *dataOperator) prepareReactions(ctx context.Context, db store.Database, reactions, emojis []models.Payload) ([]models.Descriptor, error) {
	reactionTable, err := lookupTable(models.TableReaction)
	if err != nil {
		return nil, err
	}
	emojiTable, err := lookupTable(models.TableCustomEmoji)
	if err != nil {
		return nil, err
	}

	descriptors, err := o.prepare(ctx, db, reactionTable, models.OperationCreate, reactions)
	if err != nil {
		return nil, err
	}

	emojis = append(emojis, emojisOfReactions(reactions)...)
	emojiDescriptors, err := o.prepare(ctx, db, emojiTable, models.OperationCreate, emojis)
	if err != nil {
		return nil, err
	}

	return append(descriptors, emojiDescriptors...), nil
}

// emojisOfReactions returns one emoji value per distinct emoji name. An empty
// or missing name yields no emoji.
func emojisOfReactions(reactions []models.Payload) []models.Payload {
	var emojis []models.Payload
	seen := make(map[string]struct{})
	for _, r := range reactions {
		name, ok := r.String("emoji_name")
		if !ok || name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		emojis = append(emojis, models.Payload{"name": name})
	}
	return emojis
}
