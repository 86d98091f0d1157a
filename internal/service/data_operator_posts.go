// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/models"
)

const (
	postMetadataEmbed  = "embed"
	postMetadataImages = "images"
)

// postBatch holds the per-table sub-batches split off a list of posts.
type postBatch struct {
	posts     []models.Payload
	files     []models.Payload
	metadata  []models.Payload
	emojis    []models.Payload
	reactions []models.Payload
	channels  []models.Payload
	threads   []models.Payload
}

func (o *dataOperator) HandlePosts(ctx context.Context, args PostsArgs) ([]models.Descriptor, error) {
	log := logger.FromContext(ctx)

	if len(args.Posts) == 0 {
		return nil, nil
	}

	// posts are rewritten below, the caller's values must stay untouched
	var posts []models.Payload
	if err := deepcopy.Copy(&posts, &args.Posts); err != nil {
		return nil, fmt.Errorf("copy posts: %w", err)
	}
	batch := splitPosts(posts, args.Order, args.PreviousPostID)

	db, err := o.database(ctx, models.ScopeServer)
	if err != nil {
		return nil, err
	}

	var descriptors []models.Descriptor
	for _, sub := range []struct {
		table  models.TableName
		values []models.Payload
	}{
		{models.TablePost, batch.posts},
		{models.TableFile, batch.files},
		{models.TablePostMetadata, batch.metadata},
		{models.TablePostsInChannel, batch.channels},
		{models.TablePostsInThread, batch.threads},
	} {
		td, err := lookupTable(sub.table)
		if err != nil {
			return nil, err
		}
		prepared, err := o.prepare(ctx, db, td, models.OperationCreate, sub.values)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, prepared...)
	}

	prepared, err := o.prepareReactions(ctx, db, batch.reactions, batch.emojis)
	if err != nil {
		return nil, err
	}
	descriptors = append(descriptors, prepared...)

	log.Debug().
		Str("func", "dataOperator.HandlePosts").
		Int("posts", len(batch.posts)).
		Int("files", len(batch.files)).
		Int("reactions", len(batch.reactions)).
		Int("descriptors", len(descriptors)).
		Msg("posts split into sub-batches")

	if args.PrepareRowsOnly {
		return descriptors, nil
	}

	if _, err = o.commit(ctx, db, models.ScopeServer, descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

// splitPosts moves the metadata of every post into its own sub-batches,
// links the ordered posts through prev_post_id and computes the channel and
// thread ranges. posts are modified in place.
func splitPosts(posts []models.Payload, order []string, previousPostID string) postBatch {
	batch := postBatch{posts: posts}

	inOrder := make(map[string]struct{}, len(order))
	for _, id := range order {
		inOrder[id] = struct{}{}
	}

	var ordered []models.Payload
	for _, post := range posts {
		postID, _ := post.String("id")

		if md, ok := object(post["metadata"]); ok {
			batch.addMetadata(postID, md)
		}
		delete(post, "metadata")

		if _, ok := inOrder[postID]; ok && postID != "" {
			ordered = append(ordered, post)
		}
	}

	slices.SortStableFunc(ordered, func(a, b models.Payload) int {
		at, _ := a.Int64("create_at")
		bt, _ := b.Int64("create_at")
		return cmp.Compare(at, bt)
	})

	prev := previousPostID
	for _, post := range ordered {
		post["prev_post_id"] = prev
		prev, _ = post.String("id")
	}

	batch.channels = ranges(ordered, "channel_id", "channel_id")

	var replies []models.Payload
	for _, post := range posts {
		if root, ok := post.String("root_id"); ok && root != "" {
			replies = append(replies, post)
		}
	}
	batch.threads = ranges(replies, "root_id", "post_id")

	return batch
}

func (b *postBatch) addMetadata(postID string, md models.Payload) {
	for _, file := range payloads(md["files"]) {
		if !file.Has("post_id") {
			file["post_id"] = postID
		}
		b.files = append(b.files, file)
	}

	b.reactions = append(b.reactions, payloads(md["reactions"])...)
	b.emojis = append(b.emojis, payloads(md["emojis"])...)

	if embeds, ok := md["embeds"]; ok && embeds != nil {
		b.metadata = append(b.metadata, models.Payload{"postId": postID, "type": postMetadataEmbed, "data": embeds})
	}
	if images, ok := md["images"]; ok && images != nil {
		b.metadata = append(b.metadata, models.Payload{"postId": postID, "type": postMetadataImages, "data": images})
	}
}

// payloads returns a copy of every object in a JSON array value.
func payloads(v any) []models.Payload {
	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []models.Payload:
		for _, item := range list {
			items = append(items, item)
		}
	case []map[string]any:
		for _, item := range list {
			items = append(items, item)
		}
	default:
		return nil
	}

	result := make([]models.Payload, 0, len(items))
	for _, item := range items {
		if obj, ok := object(item); ok {
			result = append(result, maps.Clone(obj))
		}
	}
	return result
}

func object(v any) (models.Payload, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case models.Payload:
		return obj, true
	default:
		return nil, false
	}
}

// ranges groups posts by groupField and returns one value per group holding
// the earliest and latest create_at under keyField. Groups keep the order of
// their first post.
func ranges(posts []models.Payload, groupField, keyField string) []models.Payload {
	var result []models.Payload
	index := make(map[string]int)

	for _, post := range posts {
		group, ok := post.String(groupField)
		if !ok || group == "" {
			continue
		}
		createAt, _ := post.Int64("create_at")

		pos, seen := index[group]
		if !seen {
			index[group] = len(result)
			result = append(result, models.Payload{keyField: group, "earliest": createAt, "latest": createAt})
			continue
		}

		r := result[pos]
		if earliest, _ := r.Int64("earliest"); createAt < earliest {
			r["earliest"] = createAt
		}
		if latest, _ := r.Int64("latest"); createAt > latest {
			r["latest"] = createAt
		}
	}
	return result
}
