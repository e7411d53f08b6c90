package userRepository

import (
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type blogWithCreatorDB struct {
	ID                   string         `db:"id"`
	Title                string         `db:"title"`
	Description          sql.NullString `db:"description"`
	Body                 string         `db:"body"`
	Preview              string         `db:"preview"`
	CreatorID            string         `db:"creator_id"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
	CreatorFirstName     string         `db:"creator_first_name"`
	CreatorLastName      string         `db:"creator_last_name"`
	CreatorEmail         string         `db:"creator_email"`
	CreatorProfileImage  string         `db:"creator_profile_image"`
	CreatorRole          string         `db:"creator_role"`
	CreatorAccountLocked bool           `db:"creator_account_locked"`
}

type likeWithBlogDB struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	blogJoinDB
}

type commentWithBlogDB struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	blogJoinDB
}

type blogJoinDB struct {
	BlogTitle            string         `db:"blog_title"`
	BlogDescription      sql.NullString `db:"blog_description"`
	BlogBody             string         `db:"blog_body"`
	BlogPreview          string         `db:"blog_preview"`
	BlogCreatorID        string         `db:"blog_creator_id"`
	BlogCreatedAt        time.Time      `db:"blog_created_at"`
	BlogUpdatedAt        time.Time      `db:"blog_updated_at"`
	CreatorFirstName     string         `db:"creator_first_name"`
	CreatorLastName      string         `db:"creator_last_name"`
	CreatorEmail         string         `db:"creator_email"`
	CreatorProfileImage  string         `db:"creator_profile_image"`
	CreatorRole          string         `db:"creator_role"`
	CreatorAccountLocked bool           `db:"creator_account_locked"`
}

type likeWithUserDB struct {
	ID                string    `db:"id"`
	BlogID            string    `db:"blog_id"`
	UserID            string    `db:"user_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	UserFirstName     string    `db:"user_first_name"`
	UserLastName      string    `db:"user_last_name"`
	UserEmail         string    `db:"user_email"`
	UserProfileImage  string    `db:"user_profile_image"`
	UserRole          string    `db:"user_role"`
	UserAccountLocked bool      `db:"user_account_locked"`
	UserCreatedAt     time.Time `db:"user_created_at"`
	UserUpdatedAt     time.Time `db:"user_updated_at"`
}

type commentWithUserDB struct {
	ID                string    `db:"id"`
	BlogID            string    `db:"blog_id"`
	UserID            string    `db:"user_id"`
	Content           string    `db:"content"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	UserFirstName     string    `db:"user_first_name"`
	UserLastName      string    `db:"user_last_name"`
	UserEmail         string    `db:"user_email"`
	UserProfileImage  string    `db:"user_profile_image"`
	UserRole          string    `db:"user_role"`
	UserAccountLocked bool      `db:"user_account_locked"`
	UserCreatedAt     time.Time `db:"user_created_at"`
	UserUpdatedAt     time.Time `db:"user_updated_at"`
}

type categoryForBlogDB struct {
	BlogID    string    `db:"blog_id"`
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (j blogJoinDB) toBlog(blogID string) (entity.Blog, entity.User) {
	return entity.Blog{
			ID:          blogID,
			Title:       j.BlogTitle,
			Description: j.BlogDescription,
			Body:        j.BlogBody,
			Preview:     j.BlogPreview,
			CreatorID:   j.BlogCreatorID,
			CreatedAt:   j.BlogCreatedAt,
			UpdatedAt:   j.BlogUpdatedAt,
		}, entity.User{
			ID:            j.BlogCreatorID,
			FirstName:     j.CreatorFirstName,
			LastName:      j.CreatorLastName,
			Email:         j.CreatorEmail,
			ProfileImage:  j.CreatorProfileImage,
			Role:          j.CreatorRole,
			AccountLocked: j.CreatorAccountLocked,
		}
}

func (r *profileRepository) ListBlogsByCreator(ctx context.Context, userID string) ([]entity.BlogListItem, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []blogWithCreatorDB

	query, args, err := sqlx.Named(queryListBlogsByCreator, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogsByCreator execution err")
		return nil, err
	}

	items := make([]entity.BlogListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.BlogListItem{
			Blog: entity.Blog{
				ID:          row.ID,
				Title:       row.Title,
				Description: row.Description,
				Body:        row.Body,
				Preview:     row.Preview,
				CreatorID:   row.CreatorID,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			Creator: entity.User{
				ID:            row.CreatorID,
				FirstName:     row.CreatorFirstName,
				LastName:      row.CreatorLastName,
				Email:         row.CreatorEmail,
				ProfileImage:  row.CreatorProfileImage,
				Role:          row.CreatorRole,
				AccountLocked: row.CreatorAccountLocked,
			},
		})
	}

	return items, nil
}

func (r *profileRepository) ListLikesByUser(ctx context.Context, userID string) ([]entity.LikeWithBlog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []likeWithBlogDB

	query, args, err := sqlx.Named(queryListLikesByUser, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListLikesByUser execution err")
		return nil, err
	}

	likes := make([]entity.LikeWithBlog, 0, len(rows))
	for _, row := range rows {
		blog, creator := row.toBlog(row.BlogID)
		likes = append(likes, entity.LikeWithBlog{
			Like: entity.Like{
				ID:        row.ID,
				BlogID:    row.BlogID,
				UserID:    row.UserID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Blog:        blog,
			BlogCreator: creator,
		})
	}

	return likes, nil
}

func (r *profileRepository) ListCommentsByUser(ctx context.Context, userID string) ([]entity.CommentWithBlog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []commentWithBlogDB

	query, args, err := sqlx.Named(queryListCommentsByUser, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListCommentsByUser execution err")
		return nil, err
	}

	comments := make([]entity.CommentWithBlog, 0, len(rows))
	for _, row := range rows {
		blog, creator := row.toBlog(row.BlogID)
		comments = append(comments, entity.CommentWithBlog{
			Comment: entity.Comment{
				ID:        row.ID,
				BlogID:    row.BlogID,
				UserID:    row.UserID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Blog:        blog,
			BlogCreator: creator,
		})
	}

	return comments, nil
}

func (r *profileRepository) ListLikesForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.LikeWithUser, error) {
	requestID := contextPkg.GetRequestID(ctx)

	byBlog := make(map[string][]entity.LikeWithUser, len(blogIDs))
	if len(blogIDs) == 0 {
		return byBlog, nil
	}

	query, args, err := sqlx.Named(queryListLikesForBlogs, map[string]interface{}{
		"blog_ids": pq.Array(blogIDs),
	})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []likeWithUserDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListLikesForBlogs execution err")
		return nil, err
	}

	for _, row := range rows {
		byBlog[row.BlogID] = append(byBlog[row.BlogID], entity.LikeWithUser{
			Like: entity.Like{
				ID:        row.ID,
				BlogID:    row.BlogID,
				UserID:    row.UserID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			User: entity.User{
				ID:            row.UserID,
				FirstName:     row.UserFirstName,
				LastName:      row.UserLastName,
				Email:         row.UserEmail,
				ProfileImage:  row.UserProfileImage,
				Role:          row.UserRole,
				AccountLocked: row.UserAccountLocked,
				CreatedAt:     row.UserCreatedAt,
				UpdatedAt:     row.UserUpdatedAt,
			},
		})
	}

	return byBlog, nil
}

func (r *profileRepository) ListCommentsForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.CommentWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)

	byBlog := make(map[string][]entity.CommentWithAuthor, len(blogIDs))
	if len(blogIDs) == 0 {
		return byBlog, nil
	}

	query, args, err := sqlx.Named(queryListCommentsForBlogs, map[string]interface{}{
		"blog_ids": pq.Array(blogIDs),
	})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []commentWithUserDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListCommentsForBlogs execution err")
		return nil, err
	}

	for _, row := range rows {
		byBlog[row.BlogID] = append(byBlog[row.BlogID], entity.CommentWithAuthor{
			Comment: entity.Comment{
				ID:        row.ID,
				BlogID:    row.BlogID,
				UserID:    row.UserID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Author: entity.User{
				ID:            row.UserID,
				FirstName:     row.UserFirstName,
				LastName:      row.UserLastName,
				Email:         row.UserEmail,
				ProfileImage:  row.UserProfileImage,
				Role:          row.UserRole,
				AccountLocked: row.UserAccountLocked,
				CreatedAt:     row.UserCreatedAt,
				UpdatedAt:     row.UserUpdatedAt,
			},
		})
	}

	return byBlog, nil
}

func (r *profileRepository) ListCategoriesForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.Category, error) {
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
		}).Error("ListCategoriesForBlogs execution err")
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
