package models

type User struct {
	ID                 string         `json:"id"`
	CreateAt           int64          `json:"create_at"`
	UpdateAt           int64          `json:"update_at"`
	DeleteAt           int64          `json:"delete_at"`
	Username           string         `json:"username"`
	AuthService        string         `json:"auth_service"`
	Email              string         `json:"email"`
	EmailVerified      bool           `json:"email_verified"`
	Nickname           string         `json:"nickname"`
	FirstName          string         `json:"first_name"`
	LastName           string         `json:"last_name"`
	Position           string         `json:"position"`
	Roles              string         `json:"roles"`
	IsBot              bool           `json:"is_bot"`
	Props              map[string]any `json:"props"`
	NotifyProps        map[string]any `json:"notify_props"`
	LastPasswordUpdate int64          `json:"last_password_update"`
	LastPictureUpdate  int64          `json:"last_picture_update"`
	Locale             string         `json:"locale"`
	Timezone           map[string]any `json:"timezone"`
}

type Preference struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

type TeamMembership struct {
	ID            string `json:"id"`
	TeamID        string `json:"team_id"`
	UserID        string `json:"user_id"`
	Roles         string `json:"roles"`
	DeleteAt      int64  `json:"delete_at"`
	SchemeGuest   bool   `json:"scheme_guest"`
	SchemeUser    bool   `json:"scheme_user"`
	SchemeAdmin   bool   `json:"scheme_admin"`
	ExplicitRoles string `json:"explicit_roles"`
}

type GroupMembership struct {
	ID      string `json:"id"`
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
}

type ChannelMembership struct {
	ID            string         `json:"id"`
	ChannelID     string         `json:"channel_id"`
	UserID        string         `json:"user_id"`
	Roles         string         `json:"roles"`
	LastViewedAt  int64          `json:"last_viewed_at"`
	LastUpdateAt  int64          `json:"last_update_at"`
	MsgCount      int64          `json:"msg_count"`
	MentionCount  int64          `json:"mention_count"`
	NotifyProps   map[string]any `json:"notify_props"`
	SchemeGuest   bool           `json:"scheme_guest"`
	SchemeUser    bool           `json:"scheme_user"`
	SchemeAdmin   bool           `json:"scheme_admin"`
	ExplicitRoles string         `json:"explicit_roles"`
}
