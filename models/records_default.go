package models

// App describes an installed build of the client. Lives in the default
// database.
type App struct {
	ID            string `json:"id"`
	BuildNumber   string `json:"buildNumber"`
	CreatedAt     int64  `json:"createdAt"`
	VersionNumber string `json:"versionNumber"`
}

// Global is a key/value pair shared by all servers.
type Global struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Servers is one server the client is connected to.
type Servers struct {
	ID           string `json:"id"`
	DBPath       string `json:"dbPath"`
	DisplayName  string `json:"displayName"`
	MentionCount int    `json:"mentionCount"`
	UnreadCount  int    `json:"unreadCount"`
	URL          string `json:"url"`
}
