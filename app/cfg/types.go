package cfg

type Cfg struct {
	// Storage
	DBPath string

	// Application configuration
	FeedsDir          string
	Port              string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string
	CacheTTL          int
	ParseRate         float64

	// One-shot parsing
	Parse    string
	Encoding string
	Format   string
	Notes    bool

	// Application metadata
	UserAgent string
	Timeout   int
	Timezone  string
	Debug     bool
	Version   string
}

// ParseOnly reports whether the process should parse a single document and
// exit instead of starting the server.
func (c *Cfg) ParseOnly() bool {
	return c.Parse != ""
}
