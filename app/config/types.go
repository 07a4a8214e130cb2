package config

// Root is the top-level structure of the feeds configuration file.
type Root struct {
	Feeds []WatchedFeed `yaml:"feeds"`
}

// WatchedFeed describes a single feed to poll, together with its
// keyword filters and per-run item limit.
type WatchedFeed struct {
	Name       string   `yaml:"name"`
	URL        string   `yaml:"url"`
	IncludeAny []string `yaml:"include_any"`
	ExcludeAny []string `yaml:"exclude_any"`
	MaxItems   int      `yaml:"max_items"`
}
