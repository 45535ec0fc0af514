package repositories

import (
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"project-board/models"

	"gorm.io/gorm"
)

type Operator int

const (
	ContainsIgnoreCase Operator = iota
	Equals
)

type ValueKind int

const (
	StringValue ValueKind = iota
	TimeValue
)

// Binding maps one query parameter onto a column predicate.
type Binding struct {
	Column   string
	Operator Operator
	Kind     ValueKind
}

type Predicate struct {
	Binding
	Value any
}

// Filter is a conjunction of predicates built from allow-listed parameters.
type Filter []Predicate

var ArticleFilterBindings = map[string]Binding{
	"title":     {Column: "articles.title", Operator: ContainsIgnoreCase},
	"content":   {Column: "articles.content", Operator: ContainsIgnoreCase},
	"hashtag":   {Column: "articles.hashtag", Operator: ContainsIgnoreCase},
	"createdBy": {Column: "articles.created_by", Operator: ContainsIgnoreCase},
	"createdAt": {Column: "articles.created_at", Operator: Equals, Kind: TimeValue},
}

var ArticleCommentFilterBindings = map[string]Binding{
	"content":   {Column: "article_comments.content", Operator: ContainsIgnoreCase},
	"createdBy": {Column: "article_comments.created_by", Operator: ContainsIgnoreCase},
	"createdAt": {Column: "article_comments.created_at", Operator: Equals, Kind: TimeValue},
}

// BindFilter takes the first value of every allow-listed parameter and
// ignores everything else, including blank values.
func BindFilter(bindings map[string]Binding, values url.Values) (Filter, error) {
	var filter Filter
	for _, name := range slices.Sorted(maps.Keys(bindings)) {
		binding := bindings[name]
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		p := Predicate{Binding: binding, Value: raw}
		if binding.Kind == TimeValue {
			t, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				return nil, models.ErrorValidation{Field: name, Message: "must be an RFC 3339 timestamp"}
			}
			p.Value = t
		}
		filter = append(filter, p)
	}
	return filter, nil
}

func (f Filter) apply(q *gorm.DB) *gorm.DB {
	for _, p := range f {
		switch p.Operator {
		case ContainsIgnoreCase:
			q = q.Where(p.Column+" ILIKE ?", containsPattern(p.Value.(string)))
		case Equals:
			q = q.Where(p.Column+" = ?", p.Value)
		}
	}
	return q
}
