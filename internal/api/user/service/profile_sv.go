package userService

import (
	"BlogNest/internal/api/user"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// GetUserProfile builds the deep profile aggregate: the user, their blogs
// with hydrated likes and comments, and the blogs they liked or commented
// on with the same hydration. Every relation is loaded with a fixed set of
// batched queries keyed by blog id.
func (s *userService) GetUserProfile(ctx context.Context, id string) (*user.UserDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	u, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ownBlogs, err := repo.Profile.ListBlogsByCreator(ctx, id)
	if err != nil {
		return nil, err
	}

	likes, err := repo.Profile.ListLikesByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := repo.Profile.ListCommentsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	blogIDs := collectBlogIDs(ownBlogs, likes, comments)

	likesByBlog, err := repo.Profile.ListLikesForBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	commentsByBlog, err := repo.Profile.ListCommentsForBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	categoriesByBlog, err := repo.Profile.ListCategoriesForBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	graph := blogGraph{
		likes:      likesByBlog,
		comments:   commentsByBlog,
		categories: categoriesByBlog,
	}

	resp := &user.UserDetailResponse{
		UserResponse: makeUserResponse(u),
		Blogs:        make([]user.BlogView, 0, len(ownBlogs)),
		Likes:        make([]user.LikeWithBlogView, 0, len(likes)),
		Comments:     make([]user.CommentWithBlogView, 0, len(comments)),
	}

	for _, b := range ownBlogs {
		resp.Blogs = append(resp.Blogs, graph.makeBlogView(b.Blog, b.Creator))
	}

	for _, l := range likes {
		resp.Likes = append(resp.Likes, user.LikeWithBlogView{
			ID:        l.ID,
			BlogID:    l.BlogID,
			UserID:    l.UserID,
			CreatedAt: l.CreatedAt,
			Blog:      graph.makeBlogView(l.Blog, l.BlogCreator),
		})
	}

	for _, c := range comments {
		resp.Comments = append(resp.Comments, user.CommentWithBlogView{
			ID:        c.ID,
			BlogID:    c.BlogID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Blog:      graph.makeBlogView(c.Blog, c.BlogCreator),
		})
	}

	return resp, nil
}

type blogGraph struct {
	likes      map[string][]entity.LikeWithUser
	comments   map[string][]entity.CommentWithAuthor
	categories map[string][]entity.Category
}

func (g blogGraph) makeBlogView(b entity.Blog, creator entity.User) user.BlogView {
	view := user.BlogView{
		ID:          b.ID,
		Title:       b.Title,
		Body:        b.Body,
		Preview:     b.Preview,
		CreatorID:   b.CreatorID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		User:        makeUserResponse(creator),
		Categories:  make([]user.CategoryView, 0, len(g.categories[b.ID])),
		Likes:       make([]user.LikeView, 0, len(g.likes[b.ID])),
		Comments:    make([]user.CommentView, 0, len(g.comments[b.ID])),
	}

	if b.Description.Valid {
		view.Description = &b.Description.String
	}

	for _, c := range g.categories[b.ID] {
		view.Categories = append(view.Categories, user.CategoryView{
			ID:   c.ID,
			Name: c.Name,
		})
	}

	for _, l := range g.likes[b.ID] {
		view.Likes = append(view.Likes, user.LikeView{
			ID:        l.ID,
			BlogID:    l.BlogID,
			UserID:    l.UserID,
			CreatedAt: l.CreatedAt,
			User:      makeUserResponse(l.User),
		})
	}

	for _, c := range g.comments[b.ID] {
		view.Comments = append(view.Comments, user.CommentView{
			ID:        c.ID,
			BlogID:    c.BlogID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			User:      makeUserResponse(c.Author),
		})
	}

	return view
}

func collectBlogIDs(blogs []entity.BlogListItem, likes []entity.LikeWithBlog, comments []entity.CommentWithBlog) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(blogs)+len(likes)+len(comments))

	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, b := range blogs {
		add(b.ID)
	}
	for _, l := range likes {
		add(l.BlogID)
	}
	for _, c := range comments {
		add(c.BlogID)
	}

	return ids
}
