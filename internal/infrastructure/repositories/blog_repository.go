package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/karthikc1125/simple-login/domain"
)

// BlogRepositoryImpl implements domain.BlogRepository using GORM
type BlogRepositoryImpl struct {
	db *gorm.DB
}

// DBBlogPost represents the database model for BlogPost
type DBBlogPost struct {
	ID         string `gorm:"primaryKey;size:36"`
	Title      string `gorm:"size:255"`
	Slug       string `gorm:"index;size:255"`
	Content    string
	AuthorID   string    `gorm:"column:author_id;size:36"`
	AuthorName string    `gorm:"column:author_name;size:255"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBBlogPost) TableName() string {
	return "blog_posts"
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

// List implements domain.BlogRepository, newest first
func (r *BlogRepositoryImpl) List(ctx context.Context) ([]*domain.BlogPost, error) {
	var rows []DBBlogPost
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	posts := make([]*domain.BlogPost, 0, len(rows))
	for i := range rows {
		posts = append(posts, r.dbToDomain(&rows[i]))
	}
	return posts, nil
}

// FindByID implements domain.BlogRepository
func (r *BlogRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindBySlug implements domain.BlogRepository
func (r *BlogRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

// Create implements domain.BlogRepository
func (r *BlogRepositoryImpl) Create(ctx context.Context, post *domain.BlogPost) error {
	return r.db.WithContext(ctx).Create(r.domainToDB(post)).Error
}

func (r *BlogRepositoryImpl) findOne(ctx context.Context, query string, arg string) (*domain.BlogPost, error) {
	var row DBBlogPost
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&row), nil
}

func (r *BlogRepositoryImpl) domainToDB(post *domain.BlogPost) *DBBlogPost {
	return &DBBlogPost{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
	}
}

func (r *BlogRepositoryImpl) dbToDomain(row *DBBlogPost) *domain.BlogPost {
	return &domain.BlogPost{
		ID:         row.ID,
		Title:      row.Title,
		Slug:       row.Slug,
		Content:    row.Content,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		CreatedAt:  row.CreatedAt,
	}
}
