package view

type Podcast struct {
	Title          string         `json:"title" yaml:"title"`
	Link           string         `json:"link,omitempty" yaml:"link,omitempty"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
	Language       string         `json:"language,omitempty" yaml:"language,omitempty"`
	PubDate        string         `json:"pub_date,omitempty" yaml:"pub_date,omitempty"`
	LastBuildDate  string         `json:"last_build_date,omitempty" yaml:"last_build_date,omitempty"`
	Generator      string         `json:"generator,omitempty" yaml:"generator,omitempty"`
	Copyright      string         `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Docs           string         `json:"docs,omitempty" yaml:"docs,omitempty"`
	ManagingEditor string         `json:"managing_editor,omitempty" yaml:"managing_editor,omitempty"`
	WebMaster      string         `json:"web_master,omitempty" yaml:"web_master,omitempty"`
	TTL            *int           `json:"ttl,omitempty" yaml:"ttl,omitempty"`
	Image          *Image         `json:"image,omitempty" yaml:"image,omitempty"`
	Author         string         `json:"author,omitempty" yaml:"author,omitempty"`
	Owner          *Person        `json:"owner,omitempty" yaml:"owner,omitempty"`
	Explicit       bool           `json:"explicit" yaml:"explicit"`
	Block          bool           `json:"block,omitempty" yaml:"block,omitempty"`
	NewFeedURL     string         `json:"new_feed_url,omitempty" yaml:"new_feed_url,omitempty"`
	Categories     []Category     `json:"categories,omitempty" yaml:"categories,omitempty"`
	RSSCategories  []RSSCategory  `json:"rss_categories,omitempty" yaml:"rss_categories,omitempty"`
	Itunes         *PodcastItunes `json:"itunes,omitempty" yaml:"itunes,omitempty"`
	Atom           *Atom          `json:"atom,omitempty" yaml:"atom,omitempty"`
	Fyyd           *Fyyd          `json:"fyyd,omitempty" yaml:"fyyd,omitempty"`
	Feedpress      *Feedpress     `json:"feedpress,omitempty" yaml:"feedpress,omitempty"`
	Podcastindex   *PodcastIndex  `json:"podcastindex,omitempty" yaml:"podcastindex,omitempty"`
	EpisodeCount   int            `json:"episode_count" yaml:"episode_count"`
	Episodes       []Episode      `json:"episodes,omitempty" yaml:"episodes,omitempty"`
}

type Episode struct {
	Title          string          `json:"title" yaml:"title"`
	Link           string          `json:"link,omitempty" yaml:"link,omitempty"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	Content        string          `json:"content,omitempty" yaml:"content,omitempty"`
	Notes          string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Author         string          `json:"author,omitempty" yaml:"author,omitempty"`
	PubDate        string          `json:"pub_date,omitempty" yaml:"pub_date,omitempty"`
	Updated        string          `json:"updated,omitempty" yaml:"updated,omitempty"`
	Guid           *Guid           `json:"guid,omitempty" yaml:"guid,omitempty"`
	Comments       string          `json:"comments,omitempty" yaml:"comments,omitempty"`
	Source         string          `json:"source,omitempty" yaml:"source,omitempty"`
	Enclosure      *Enclosure      `json:"enclosure,omitempty" yaml:"enclosure,omitempty"`
	Duration       *int64          `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	Season         *int            `json:"season,omitempty" yaml:"season,omitempty"`
	Number         *int            `json:"episode,omitempty" yaml:"episode,omitempty"`
	EpisodeType    string          `json:"episode_type,omitempty" yaml:"episode_type,omitempty"`
	Explicit       bool            `json:"explicit" yaml:"explicit"`
	Block          bool            `json:"block,omitempty" yaml:"block,omitempty"`
	Image          *Image          `json:"image,omitempty" yaml:"image,omitempty"`
	RSSCategories  []RSSCategory   `json:"rss_categories,omitempty" yaml:"rss_categories,omitempty"`
	Subtitle       string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Keywords       string          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Atom           *Atom           `json:"atom,omitempty" yaml:"atom,omitempty"`
	Chapters       *Chapters       `json:"chapters,omitempty" yaml:"chapters,omitempty"`
	Soundbites     []Soundbite     `json:"soundbites,omitempty" yaml:"soundbites,omitempty"`
	Transcripts    []Transcript    `json:"transcripts,omitempty" yaml:"transcripts,omitempty"`
	SimpleChapters []SimpleChapter `json:"simple_chapters,omitempty" yaml:"simple_chapters,omitempty"`
	BitloveGuid    string          `json:"bitlove_guid,omitempty" yaml:"bitlove_guid,omitempty"`
}

type Image struct {
	URL         string `json:"url" yaml:"url"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Width       int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height      int    `json:"height,omitempty" yaml:"height,omitempty"`
}

type Person struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

type Category struct {
	Name          string     `json:"name" yaml:"name"`
	Subcategories []Category `json:"subcategories,omitempty" yaml:"subcategories,omitempty"`
}

type RSSCategory struct {
	Name   string `json:"name" yaml:"name"`
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

type Guid struct {
	Text        string `json:"text" yaml:"text"`
	IsPermalink *bool  `json:"is_permalink,omitempty" yaml:"is_permalink,omitempty"`
}

type Enclosure struct {
	URL    string `json:"url" yaml:"url"`
	Length int64  `json:"length" yaml:"length"`
	Type   string `json:"type" yaml:"type"`
}

type Link struct {
	Href     string `json:"href" yaml:"href"`
	Rel      string `json:"rel,omitempty" yaml:"rel,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Hreflang string `json:"hreflang,omitempty" yaml:"hreflang,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Length   string `json:"length,omitempty" yaml:"length,omitempty"`
}

type PodcastItunes struct {
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Complete bool   `json:"complete,omitempty" yaml:"complete,omitempty"`
}

type Atom struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Links        []Link   `json:"links,omitempty" yaml:"links,omitempty"`
	Authors      []Person `json:"authors,omitempty" yaml:"authors,omitempty"`
	Contributors []Person `json:"contributors,omitempty" yaml:"contributors,omitempty"`
}

type Fyyd struct {
	Verify string `json:"verify" yaml:"verify"`
}

type Feedpress struct {
	NewsletterID string `json:"newsletter_id,omitempty" yaml:"newsletter_id,omitempty"`
	Locale       string `json:"locale,omitempty" yaml:"locale,omitempty"`
	PodcastID    string `json:"podcast_id,omitempty" yaml:"podcast_id,omitempty"`
	CSSFile      string `json:"css_file,omitempty" yaml:"css_file,omitempty"`
	Link         string `json:"link,omitempty" yaml:"link,omitempty"`
}

type PodcastIndex struct {
	Locked  *Locked   `json:"locked,omitempty" yaml:"locked,omitempty"`
	Funding []Funding `json:"funding,omitempty" yaml:"funding,omitempty"`
}

type Locked struct {
	Owner  string `json:"owner" yaml:"owner"`
	Locked bool   `json:"locked" yaml:"locked"`
}

type Funding struct {
	URL     string `json:"url" yaml:"url"`
	Message string `json:"message" yaml:"message"`
}

type Chapters struct {
	URL  string `json:"url" yaml:"url"`
	Type string `json:"type" yaml:"type"`
}

type Soundbite struct {
	StartTime float64 `json:"start_time" yaml:"start_time"`
	Duration  float64 `json:"duration" yaml:"duration"`
	Title     string  `json:"title,omitempty" yaml:"title,omitempty"`
}

type Transcript struct {
	URL      string `json:"url" yaml:"url"`
	Type     string `json:"type" yaml:"type"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Rel      string `json:"rel,omitempty" yaml:"rel,omitempty"`
}

type SimpleChapter struct {
	Start string `json:"start" yaml:"start"`
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}
