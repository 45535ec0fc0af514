package repositories

import (
	"fmt"
	"strings"

	"project-board/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var articleSortColumns = map[string]string{
	"id":         "articles.id",
	"title":      "articles.title",
	"content":    "articles.content",
	"hashtag":    "articles.hashtag",
	"createdAt":  "articles.created_at",
	"createdBy":  "articles.created_by",
	"modifiedAt": "articles.modified_at",
	"modifiedBy": "articles.modified_by",
}

var articleCommentSortColumns = map[string]string{
	"id":         "article_comments.id",
	"content":    "article_comments.content",
	"createdAt":  "article_comments.created_at",
	"createdBy":  "article_comments.created_by",
	"modifiedAt": "article_comments.modified_at",
	"modifiedBy": "article_comments.modified_by",
}

// applySort orders by the allow-listed sort properties, falling back to newest
// first, and always ends with the id so page boundaries are stable.
func applySort(q *gorm.DB, pageable models.Pageable, columns map[string]string) *gorm.DB {
	idColumn := columns["id"]
	createdColumn := columns["createdAt"]

	sortedByID := false
	applied := false
	for _, order := range pageable.Sort {
		column, ok := columns[order.Property]
		if !ok {
			continue
		}
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column, Raw: true},
			Desc:   order.Direction == models.Desc,
		})
		applied = true
		if column == idColumn {
			sortedByID = true
		}
	}
	if !applied {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: createdColumn, Raw: true}, Desc: true})
	}
	if !sortedByID {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: idColumn, Raw: true}, Desc: true})
	}
	return q
}

// findPage counts base and loads the requested slice of it. base must be a
// shareable session.
func findPage[T any](base *gorm.DB, pageable models.Pageable, columns map[string]string, preloads ...string) (models.Page[T], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return models.Page[T]{}, fmt.Errorf("count: %w", err)
	}

	var items []T
	if total > int64(pageable.Offset()) {
		q := base
		for _, p := range preloads {
			q = q.Preload(p)
		}
		q = applySort(q, pageable, columns)
		if err := q.Offset(pageable.Offset()).Limit(pageable.Size).Find(&items).Error; err != nil {
			return models.Page[T]{}, fmt.Errorf("find: %w", err)
		}
	}
	return models.NewPage(items, pageable, total), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching keyword literally.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}
