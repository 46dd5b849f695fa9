package tui

type Category struct {
	ID          string
	Name        string
	Description string
}

var Categories = []Category{
	{ID: "server", Name: "Server", Description: "Listen address and shutdown settings"},
	{ID: "backend", Name: "Backend", Description: "OpenHands API endpoint and probing"},
	{ID: "git", Name: "Git", Description: "Snapshot clone binary, token and scratch space"},
	{ID: "local", Name: "Local Backend", Description: "In-process clone backend"},
	{ID: "features", Name: "Features", Description: "Remote git and command toggles"},
	{ID: "cache", Name: "Cache", Description: "Snapshot caching behavior and TTL"},
	{ID: "logging", Name: "Logging", Description: "Log level and format"},
}

func GetCategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

func GetCategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
