package models

import (
	"fmt"
	"strings"
)

type SearchType string

const (
	SearchTypeTitle    SearchType = "TITLE"
	SearchTypeContent  SearchType = "CONTENT"
	SearchTypeID       SearchType = "ID"
	SearchTypeNickname SearchType = "NICKNAME"
	SearchTypeHashtag  SearchType = "HASHTAG"
)

// SearchTypes lists every search type in display order.
func SearchTypes() []SearchType {
	return []SearchType{SearchTypeTitle, SearchTypeContent, SearchTypeID, SearchTypeNickname, SearchTypeHashtag}
}

// Description is the label shown next to the search box.
func (s SearchType) Description() string {
	switch s {
	case SearchTypeTitle:
		return "title"
	case SearchTypeContent:
		return "content"
	case SearchTypeID:
		return "user id"
	case SearchTypeNickname:
		return "nickname"
	case SearchTypeHashtag:
		return "hashtag"
	}
	return string(s)
}

// ParseSearchType is case-insensitive and accepts ACCOUNT_ID as an alias of ID.
func ParseSearchType(raw string) (SearchType, error) {
	switch st := SearchType(strings.ToUpper(strings.TrimSpace(raw))); st {
	case SearchTypeTitle, SearchTypeContent, SearchTypeID, SearchTypeNickname, SearchTypeHashtag:
		return st, nil
	case "ACCOUNT_ID":
		return SearchTypeID, nil
	}
	return "", ErrorValidation{Field: "search_type", Message: fmt.Sprintf("unknown search type %q", raw)}
}
