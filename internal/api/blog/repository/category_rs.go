package blogRepository

import (
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type categoryForBlogDB struct {
	BlogID    string    `db:"blog_id"`
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UpsertByName inserts the category if the name is unused and returns the
// existing row otherwise, so tag sync never races on the unique name. The
// returned timestamps are the row's own, not the candidate's.
func (r *categoriesRepository) UpsertByName(ctx context.Context, id, name string, now time.Time) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpsertCategoryByName, map[string]interface{}{
		"id":         id,
		"name":       name,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertByName named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	c := entity.Category{Name: name}
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Error("UpsertByName execution err")
		return entity.Category{}, err
	}

	return c, nil
}

func (r *categoriesRepository) SyncBlogCategories(ctx context.Context, blogID string, categoryIDs []string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlogCategories, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SyncBlogCategories delete execution err")
		return err
	}

	for _, categoryID := range categoryIDs {
		query, args, err := sqlx.Named(queryInsertBlogCategory, map[string]interface{}{
			"blog_id":     blogID,
			"category_id": categoryID,
		})
		if err != nil {
			return err
		}

		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": categoryID,
				"error":       err.Error(),
			}).Error("SyncBlogCategories insert execution err")
			return err
		}
	}

	return nil
}

func (r *categoriesRepository) ListForBlog(ctx context.Context, blogID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categories []entity.Category

	query, args, err := sqlx.Named(queryListCategoriesForBlog, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListForBlog execution err")
		return nil, err
	}

	return categories, nil
}

func (r *categoriesRepository) ListForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	byBlog := make(map[string][]entity.Category, len(blogIDs))
	if len(blogIDs) == 0 {
		return byBlog, nil
	}

	query, args, err := sqlx.Named(queryListCategoriesForBlogs, map[string]interface{}{
		"blog_ids": pq.Array(blogIDs),
	})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []categoryForBlogDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListForBlogs execution err")
		return nil, err
	}

	for _, row := range rows {
		byBlog[row.BlogID] = append(byBlog[row.BlogID], entity.Category{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return byBlog, nil
}
