// Package models defines the data types shared by the path finder, its link
// sources and the outer surfaces.
package models

import "strconv"

// MainNamespace is the MediaWiki namespace holding content articles.
const MainNamespace = 0

// PageID is the stable, redirect-independent identifier of an article.
type PageID int64

// String returns the decimal form used on the wire.
func (id PageID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Link is one outbound link of a page as reported by a link source.
type Link struct {
	Title     string `json:"title"`
	Namespace int    `json:"ns"`
}

// Lookup is the outcome of resolving a title against a link source.
// Found is false when the source positively reports that no such title exists.
type Lookup struct {
	Found          bool
	ID             PageID
	CanonicalTitle string
	Reason         string
}
