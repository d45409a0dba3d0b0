package models

// Kind identifies one of the synchronized record kinds.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Kinds returns every kind in reconcile order: posts before the comments that reference them.
func Kinds() []Kind {
	return []Kind{KindPost, KindComment}
}

// Record is implemented by the stored entities. Ids are assigned by the remote
// system and never generated locally.
type Record interface {
	Post | Comment
	Key() int64
	Kind() Kind
}

// Post is a blog post. It owns its comments; deleting a post deletes them.
type Post struct {
	ID       int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID   int64     `gorm:"column:user_id;not null" json:"user_id" validate:"gt=0"`
	Title    string    `gorm:"column:title;size:256;not null" json:"title" validate:"max=256"`
	Body     string    `gorm:"column:body;type:text;not null" json:"body"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

// TableName overrides the table name used by GORM.
func (Post) TableName() string {
	return "posts"
}

func (p Post) Key() int64 { return p.ID }

func (Post) Kind() Kind { return KindPost }

// Comment is a comment on a post.
type Comment struct {
	ID     int64  `gorm:"column:id;primaryKey" json:"id"`
	PostID int64  `gorm:"column:post_id;not null;index" json:"post_id" validate:"gt=0"`
	Name   string `gorm:"column:name;size:256;not null" json:"name" validate:"max=256"`
	Email  string `gorm:"column:email;size:254;not null" json:"email" validate:"required,email"`
	Body   string `gorm:"column:body;type:text;not null" json:"body"`
}

// TableName overrides the table name used by GORM.
func (Comment) TableName() string {
	return "comments"
}

func (c Comment) Key() int64 { return c.ID }

func (Comment) Kind() Kind { return KindComment }

// TableFor returns the table backing a kind.
func TableFor(kind Kind) string {
	switch kind {
	case KindPost:
		return Post{}.TableName()
	case KindComment:
		return Comment{}.TableName()
	default:
		return ""
	}
}
