package models

// Post is a channel message. The server's metadata object is not part of
// the record; it is split into File, Reaction, CustomEmoji and PostMetadata
// rows by the posts handler.
type Post struct {
	ID            string         `json:"id"`
	ChannelID     string         `json:"channel_id"`
	UserID        string         `json:"user_id"`
	CreateAt      int64          `json:"create_at"`
	UpdateAt      int64          `json:"update_at"`
	EditAt        int64          `json:"edit_at"`
	DeleteAt      int64          `json:"delete_at"`
	IsPinned      bool           `json:"is_pinned"`
	RootID        string         `json:"root_id"`
	ParentID      string         `json:"parent_id"`
	OriginalID    string         `json:"original_id"`
	PrevPostID    string         `json:"prev_post_id"`
	Message       string         `json:"message"`
	Type          string         `json:"type"`
	Props         map[string]any `json:"props"`
	Hashtags      string         `json:"hashtags"`
	PendingPostID string         `json:"pending_post_id"`
	ReplyCount    int            `json:"reply_count"`
	LastReplyAt   int64          `json:"last_reply_at"`
	Participants  []any          `json:"participants"`
}

// PostsInThread is the create_at range of the replies known locally for a
// root post.
type PostsInThread struct {
	ID       string `json:"id"`
	PostID   string `json:"post_id"`
	Earliest int64  `json:"earliest"`
	Latest   int64  `json:"latest"`
}

type Reaction struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	PostID    string `json:"post_id"`
	EmojiName string `json:"emoji_name"`
	CreateAt  int64  `json:"create_at"`
	UpdateAt  int64  `json:"update_at"`
	DeleteAt  int64  `json:"delete_at"`
}

// File is the local record of a post attachment.
type File struct {
	ID             string `json:"id"`
	PostID         string `json:"post_id"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Extension      string `json:"extension"`
	MimeType       string `json:"mime_type"`
	Size           int64  `json:"size"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	CreateAt       int64  `json:"create_at"`
	UpdateAt       int64  `json:"update_at"`
	DeleteAt       int64  `json:"delete_at"`
	LocalPath      string `json:"local_path"`
	ImageThumbnail string `json:"image_thumbnail"`
}

// PostMetadata keeps one kind of post metadata (embeds, images) as opaque
// data.
type PostMetadata struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`
	Type   string `json:"type"`
	Data   any    `json:"data"`
}

// Draft is an unsent message for a channel or a thread.
type Draft struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	RootID    string `json:"root_id"`
	Message   string `json:"message"`
	Files     []any  `json:"files"`
}

// PostsInChannel is the create_at range of the posts loaded for a channel.
type PostsInChannel struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Earliest  int64  `json:"earliest"`
	Latest    int64  `json:"latest"`
}

type CustomEmoji struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatorID string `json:"creator_id"`
	CreateAt  int64  `json:"create_at"`
	UpdateAt  int64  `json:"update_at"`
	DeleteAt  int64  `json:"delete_at"`
}
