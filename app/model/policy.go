package model

import "github.com/lysyi3m/podcast-comb/app/namespace"

// Policy states which episode fields are mandatory for a feed dialect.
//
//	RSS 2.0   title, enclosure (url, length and type)
//	Atom 1.0  title; a rel="enclosure" link is optional and its length
//	          defaults to 0 when absent
type Policy struct {
	Dialect          namespace.Dialect
	RequireEnclosure bool
}

func PolicyFor(dialect namespace.Dialect) Policy {
	switch dialect {
	case namespace.DialectAtom:
		return Policy{Dialect: dialect}
	default:
		return Policy{Dialect: namespace.DialectRSS, RequireEnclosure: true}
	}
}

// Required lists the episode fields Build refuses to do without.
func (p Policy) Required() []Field {
	if p.RequireEnclosure {
		return []Field{FieldTitle, FieldEnclosure}
	}
	return []Field{FieldTitle}
}
