package model

import "time"

// TitleMaxLength bounds BlogPost.Title.
const TitleMaxLength = 200

// BlogPost is a row of blog_posts.
type BlogPost struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Content     string    `json:"content" db:"content"`
	Date        time.Time `json:"date" db:"date"`
}

// ListBlogPostsRequest is the (empty) payload of GET /posts/.
type ListBlogPostsRequest struct{}

func (r *ListBlogPostsRequest) Validate() error {
	return nil
}

// GetBlogPostRequest is the payload of GET /posts/:id/.
type GetBlogPostRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *GetBlogPostRequest) Validate() error {
	return validate.Struct(r)
}

// CreateBlogPostPayload holds the columns an author supplies; id and date
// are assigned by the store.
type CreateBlogPostPayload struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

func (p *CreateBlogPostPayload) Validate() error {
	return validate.Struct(p)
}
