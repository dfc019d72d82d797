package model

import (
	"strings"

	"github.com/lysyi3m/podcast-comb/app/failure"
)

// CategoryBuilder assembles a Category and its subcategories in document order.
type CategoryBuilder struct {
	name          string
	subcategories []Category
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{}
}

func (b *CategoryBuilder) Name(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) AddSubcategory(c Category) *CategoryBuilder {
	b.subcategories = append(b.subcategories, c)
	return b
}

// ApplyFrom seeds the builder with a copy of c; later calls extend it.
func (b *CategoryBuilder) ApplyFrom(c Category) *CategoryBuilder {
	b.name = c.name
	b.subcategories = c.subcategories.Slice()
	return b
}

func (b *CategoryBuilder) Build() (Category, error) {
	defer b.reset()
	if strings.TrimSpace(b.name) == "" {
		return Category{}, failure.MissingField("category", "name")
	}
	return Category{name: b.name, subcategories: NewList(b.subcategories...)}, nil
}

func (b *CategoryBuilder) reset() {
	*b = CategoryBuilder{}
}

type PersonBuilder struct {
	name  string
	email string
	uri   string
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{}
}

func (b *PersonBuilder) Name(name string) *PersonBuilder {
	b.name = name
	return b
}

func (b *PersonBuilder) Email(email string) *PersonBuilder {
	b.email = email
	return b
}

func (b *PersonBuilder) URI(uri string) *PersonBuilder {
	b.uri = uri
	return b
}

func (b *PersonBuilder) Build() (Person, error) {
	defer b.reset()
	if strings.TrimSpace(b.name) == "" {
		return Person{}, failure.MissingField("person", "name")
	}
	return Person{name: b.name, email: b.email, uri: b.uri}, nil
}

func (b *PersonBuilder) reset() {
	*b = PersonBuilder{}
}

type ImageBuilder struct {
	url         string
	title       string
	link        string
	description string
	width       int
	height      int
}

func NewImageBuilder() *ImageBuilder {
	return &ImageBuilder{}
}

func (b *ImageBuilder) URL(url string) *ImageBuilder {
	b.url = url
	return b
}

func (b *ImageBuilder) Title(title string) *ImageBuilder {
	b.title = title
	return b
}

func (b *ImageBuilder) Link(link string) *ImageBuilder {
	b.link = link
	return b
}

func (b *ImageBuilder) Description(description string) *ImageBuilder {
	b.description = description
	return b
}

func (b *ImageBuilder) Size(width, height int) *ImageBuilder {
	b.width = width
	b.height = height
	return b
}

func (b *ImageBuilder) Build() (Image, error) {
	defer b.reset()
	if strings.TrimSpace(b.url) == "" {
		return Image{}, failure.MissingField("image", "url")
	}
	return Image{
		url:         b.url,
		title:       b.title,
		link:        b.link,
		description: b.description,
		width:       b.width,
		height:      b.height,
	}, nil
}

func (b *ImageBuilder) reset() {
	*b = ImageBuilder{}
}

// EnclosureBuilder requires url, length and type. A length of zero is
// accepted once it has been set explicitly.
type EnclosureBuilder struct {
	url       string
	length    int64
	hasLength bool
	mediaType string
}

func NewEnclosureBuilder() *EnclosureBuilder {
	return &EnclosureBuilder{}
}

func (b *EnclosureBuilder) URL(url string) *EnclosureBuilder {
	b.url = url
	return b
}

func (b *EnclosureBuilder) Length(length int64) *EnclosureBuilder {
	b.length = length
	b.hasLength = true
	return b
}

func (b *EnclosureBuilder) Type(mediaType string) *EnclosureBuilder {
	b.mediaType = mediaType
	return b
}

func (b *EnclosureBuilder) Build() (Enclosure, error) {
	defer b.reset()
	switch {
	case strings.TrimSpace(b.url) == "":
		return Enclosure{}, failure.MissingField("enclosure", "url")
	case !b.hasLength || b.length < 0:
		return Enclosure{}, failure.MissingField("enclosure", "length")
	case strings.TrimSpace(b.mediaType) == "":
		return Enclosure{}, failure.MissingField("enclosure", "type")
	}
	return Enclosure{url: b.url, length: b.length, mediaType: b.mediaType}, nil
}

func (b *EnclosureBuilder) reset() {
	*b = EnclosureBuilder{}
}
